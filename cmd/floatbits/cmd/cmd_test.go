package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/filecoin-project/go-floatbits/floatbin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncodeCmd(t *testing.T) {
	out, err := run(t, "encode", "-p", "32", "12.25")
	require.NoError(t, err)
	assert.Equal(t, "01000001010001000000000000000000\n", out)

	out, err = run(t, "encode", "--fields", "--precision", "single", "12.25", "1")
	require.NoError(t, err)
	assert.Equal(t, "0 10000010 10001000000000000000000\n0 01111111 00000000000000000000000\n", out)

	out, err = run(t, "encode", "--", "-0")
	require.NoError(t, err)
	assert.Equal(t, "1"+strings.Repeat("0", 63)+"\n", out)
}

func TestEncodeCmdExplain(t *testing.T) {
	out, err := run(t, "encode", "-p", "32", "--explain", "12.25")
	require.NoError(t, err)
	assert.Contains(t, out, "0 10000010 10001000000000000000000\n")
	assert.Contains(t, out, "sign:     0 (+)\n")
	assert.Contains(t, out, "exponent: 10000010 = 130, unbiased 3 (bias 127)\n")
	assert.Contains(t, out, "mantissa: 10001000000000000000000\n")
	assert.Contains(t, out, "class:    normal\n")
	assert.Contains(t, out, "value:    12.25\n")

	out, err = run(t, "encode", "--explain", "--", "-inf")
	require.NoError(t, err)
	assert.Contains(t, out, "sign:     1 (-)\n")
	assert.Contains(t, out, "exponent: 11111111111 = 2047\n")
	assert.Contains(t, out, "class:    infinite\n")
}

func TestDecodeCmd(t *testing.T) {
	out, err := run(t, "decode", "-p", "32", "01000001010001000000000000000000", "0 10000100 10001000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "12.25\n49\n", out)

	out, err = run(t, "decode", "0011_1111_1011"+strings.Repeat("_1001", 12)+"_1010")
	require.NoError(t, err)
	assert.Equal(t, "0.1\n", out)
}

func TestDemoCmd(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "12.25 in single precision is 0 10000010 10001000000000000000000", lines[0])
	assert.Equal(t, "01000001010001000000000000000000 decodes back to 12.25", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "which equals to 0.10000000000000001"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "which equals to 0.20000000000000001"), lines[3])
	assert.True(t, strings.HasSuffix(lines[4], "which equals to 0.30000000000000004"), lines[4])
	assert.Equal(t, "Sum: 0.30000000000000004", lines[5])

	out, err = run(t, "demo", "--digits", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "which equals to 0.30\n")
}

// NEGATIVE TESTS
func TestCmdErrors(t *testing.T) {
	_, err := run(t, "decode", "-p", "32", "102")
	assert.ErrorIs(t, err, floatbin.ErrInvalidBitString)

	_, err = run(t, "decode", "-p", "32", "0101", "01000001010001000000000000000000", "2")
	assert.ErrorIs(t, err, floatbin.ErrInvalidBitString)
	assert.Contains(t, err.Error(), "index 0")
	assert.Contains(t, err.Error(), "index 2")

	_, err = run(t, "encode", "-p", "16", "1")
	assert.ErrorIs(t, err, floatbin.ErrPrecisionMismatch)

	_, err = run(t, "encode", "twelve")
	assert.Error(t, err)

	_, err = run(t, "encode")
	assert.Error(t, err)

	_, err = run(t, "demo", "--digits", "-1")
	assert.Error(t, err)
}
