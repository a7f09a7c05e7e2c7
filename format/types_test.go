package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eeprom/errs"
)

func TestFieldKind_String(t *testing.T) {
	tests := []struct {
		kind FieldKind
		want string
	}{
		{KindBinary, "Binary"},
		{KindBinaryReversed, "BinaryReversed"},
		{KindVersion, "Version"},
		{KindASCII, "Ascii"},
		{KindMAC, "Mac"},
		{KindDate, "Date"},
		{KindReserved, "Reserved"},
		{KindRaw, "Raw"},
		{FieldKind(0), "Unknown"},
		{FieldKind(9), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}
}

func TestFieldKind_Updatable(t *testing.T) {
	for k := KindBinary; k <= KindDate; k++ {
		require.True(t, k.Updatable(), k.String())
	}
	require.False(t, KindReserved.Updatable())
	require.False(t, KindRaw.Updatable())
	require.False(t, FieldKind(0).Updatable())
}

func TestLayoutVersion_String(t *testing.T) {
	require.Equal(t, "auto", LayoutAuto.String())
	require.Equal(t, "legacy", LayoutLegacy.String())
	require.Equal(t, "v1", LayoutV1.String())
	require.Equal(t, "v4", LayoutV4.String())
	require.Equal(t, "raw", LayoutRaw.String())
	require.Equal(t, "unknown", LayoutVersion(7).String())
	require.False(t, LayoutVersion(7).Valid())
}

func TestParseLayoutVersion(t *testing.T) {
	tests := []struct {
		in   string
		want LayoutVersion
	}{
		{"auto", LayoutAuto},
		{"legacy", LayoutLegacy},
		{"Legacy", LayoutLegacy},
		{"raw", LayoutRaw},
		{"1", LayoutV1},
		{"v2", LayoutV2},
		{"3", LayoutV3},
		{" V4 ", LayoutV4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLayoutVersion(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			if tt.want != LayoutAuto {
				round, err := ParseLayoutVersion(got.String())
				require.NoError(t, err)
				require.Equal(t, got, round)
			}
		})
	}

	for _, bad := range []string{"", "0", "5", "v", "v12", "latest"} {
		_, err := ParseLayoutVersion(bad)
		require.ErrorIs(t, err, errs.ErrInvalidLayoutVersion, bad)
	}
}
