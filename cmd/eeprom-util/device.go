package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/eeprom/format"
)

// fileDevice is a record stored at the start of a file. Files longer than a
// record, such as the sysfs attribute of a larger EEPROM, are accepted; only
// the first format.RecordSize bytes are read and written.
type fileDevice struct {
	path string
}

func (d fileDevice) Read() ([]byte, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	defer f.Close()

	record := make([]byte, format.RecordSize)
	if _, err := io.ReadFull(f, record); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read device %s: shorter than %d bytes", d.path, format.RecordSize)
		}

		return nil, fmt.Errorf("read device %s: %w", d.path, err)
	}

	return record, nil
}

func (d fileDevice) Write(record []byte) (err error) {
	f, err := os.OpenFile(d.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close device: %w", cerr)
		}
	}()

	if _, err := f.WriteAt(record, 0); err != nil {
		return fmt.Errorf("write device %s: %w", d.path, err)
	}

	return nil
}
