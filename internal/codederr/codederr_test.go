package codederr

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		registry *Registry
		code     int
		want     string
	}{
		{NBT, NBTWarning, "Warning"},
		{NBT, NBTSemanticError, "NBT Semantic Error"},
		{NBT, NBTLabelPointer, "Label String Pointer"},
		{NBT, NBTMalformedMessage, "Malformed Message"},
		{SMB, SMBSemanticError, "SMB Semantic Error"},
		{SMB, SMBProtocolMismatch, "SMB Protocol Mismatch"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.registry.Name(), tt.code), func(t *testing.T) {
			got, err := tt.registry.Describe(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeOutsideRange(t *testing.T) {
	for _, r := range []*Registry{NBT, SMB} {
		lo, hi := r.Range()
		for _, code := range []int{lo - 1, hi + 1, 0, -1} {
			_, err := r.Describe(code)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUndefinedCode), "code %d", code)
			assert.Equal(t, fmt.Sprintf("Undefined error code: %d.", code), err.Error())
		}
	}
}

func TestRange(t *testing.T) {
	lo, hi := NBT.Range()
	assert.Equal(t, 1000, lo)
	assert.Equal(t, 1005, hi)
	assert.Less(t, lo, hi)

	lo, hi = SMB.Range()
	assert.Equal(t, 1000, lo)
	assert.Equal(t, 1003, hi)

	label, err := NBT.Describe(NBT.WarningCode())
	require.NoError(t, err)
	assert.Equal(t, "Warning", label)
	assert.Equal(t, []int{1000, 1001, 1002, 1003}, SMB.Codes())
}

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"nbt with detail", NBT.New(NBTMalformedMessage, "Mein Luftkissenfahrzeug ist voller Aale"),
			"1005: Malformed Message; Mein Luftkissenfahrzeug ist voller Aale."},
		{"smb with detail", SMB.New(SMBProtocolMismatch, "Die Flipperwaldt gersput"),
			"1003: SMB Protocol Mismatch; Die Flipperwaldt gersput."},
		{"detail x", NBT.New(NBTSyntaxError, "x"), "1001: NBT Syntax Error; x."},
		{"no detail", NBT.New(NBTSyntaxError), "1001: NBT Syntax Error."},
		{"empty detail", NBT.New(NBTSyntaxError, ""), "1001: NBT Syntax Error."},
		{"formatted", NBT.Errorf(NBTSemanticError, "label %d too long", 64), "1002: NBT Semantic Error; label 64 too long."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewPanicsOnUndefinedCode(t *testing.T) {
	assert.Panics(t, func() { NBT.New(999) })
	assert.Panics(t, func() { SMB.New(SMBProtocolMismatch + 1) })
}

func TestLookup(t *testing.T) {
	e, err := NBT.Lookup(NBTNoLabelPointer, "offset 12")
	require.NoError(t, err)
	assert.Equal(t, "nbt", e.Suite())
	assert.Equal(t, "offset 12", e.Detail)

	_, err = NBT.Lookup(2000)
	assert.True(t, errors.Is(err, ErrUndefinedCode))
}

func TestWarningClass(t *testing.T) {
	warn := NBT.Warning("odd padding")
	assert.True(t, warn.IsWarning())
	assert.Equal(t, "1000: Warning; odd padding.", warn.Error())
	assert.False(t, NBT.New(NBTSyntaxError).IsWarning())

	wrapped := errors.Wrap(warn, "decoding name")
	assert.True(t, IsWarning(wrapped))
	assert.False(t, IsWarning(errors.Wrap(SMB.New(SMBSyntaxError), "parse")))
	assert.False(t, IsWarning(errors.New("plain")))
	assert.False(t, IsWarning(nil))
}

func TestErrorIs(t *testing.T) {
	err := errors.Wrap(NBT.New(NBTMalformedMessage, "short read"), "reading packet")

	assert.True(t, errors.Is(err, NBT.New(NBTMalformedMessage)))
	assert.False(t, errors.Is(err, NBT.New(NBTSyntaxError)))
	// Same code, different suite.
	assert.False(t, errors.Is(NBT.New(NBTSyntaxError), SMB.New(SMBSyntaxError)))

	coded, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, NBTMalformedMessage, coded.Code)
	assert.Same(t, NBT, coded.Registry())
}

func TestNewRegistryValidation(t *testing.T) {
	assert.Panics(t, func() { NewRegistry("empty", nil) })
	assert.Panics(t, func() { NewRegistry("gap", map[int]string{10: "Warning", 12: "Other"}) })

	r := NewRegistry("tiny", map[int]string{7: "Warning"})
	lo, hi := r.Range()
	assert.Equal(t, 7, lo)
	assert.Equal(t, 7, hi)
	assert.True(t, r.Warning().IsWarning())
}

func TestSuiteLookup(t *testing.T) {
	r, err := Suite(" NBT ")
	require.NoError(t, err)
	assert.Same(t, NBT, r)

	_, err = Suite("dns")
	assert.True(t, errors.Is(err, ErrUnknownSuite))
	assert.Equal(t, []string{"nbt", "smb"}, Suites())
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for code := 1000; code <= 1005; code++ {
				_, _ = NBT.Describe(code)
				_ = NBT.New(code, fmt.Sprint(i)).Error()
			}
		}(i)
	}
	wg.Wait()
}
