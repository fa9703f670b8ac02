package ecc

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexDigest(msg string) string {
	sum := sha256.Sum256([]byte(msg))
	return hex.EncodeToString(sum[:])
}

func TestSignVerifyRoundTripSmallCurve(t *testing.T) {
	curve := testCurve43(t)

	for i := 0; i < 5; i++ {
		key, err := GenerateKey(curve, rand.Reader)
		require.NoError(t, err)
		require.True(t, curve.IsOnCurve(key.Public))

		digest := hexDigest("message")
		sig, err := Sign(curve, key.D, digest, rand.Reader)
		require.NoError(t, err)

		assert.True(t, Verify(curve, sig, digest, key.Public))
	}
}

func TestSignVerifyRoundTripSecp256k1(t *testing.T) {
	curve, err := Secp256k1()
	require.NoError(t, err)

	key, err := GenerateKey(curve, rand.Reader)
	require.NoError(t, err)

	digest := hexDigest("hello, elliptic curves")
	sig, err := Sign(curve, key.D, digest, rand.Reader)
	require.NoError(t, err)

	n := curve.Order()
	assert.True(t, sig.R.Sign() > 0 && sig.R.Cmp(n) < 0)
	assert.True(t, sig.S.Sign() > 0 && sig.S.Cmp(n) < 0)
	assert.True(t, Verify(curve, sig, digest, key.Public))
}

func TestVerifyTamperSensitivity(t *testing.T) {
	curve, err := Secp256k1()
	require.NoError(t, err)

	key, err := GenerateKey(curve, rand.Reader)
	require.NoError(t, err)

	digest := hexDigest("original message")
	sig, err := Sign(curve, key.D, digest, rand.Reader)
	require.NoError(t, err)
	require.True(t, Verify(curve, sig, digest, key.Public))

	// Flipping any single bit of r or s must invalidate the signature.
	for _, bit := range []int{0, 1, 17, 128, 255} {
		r := new(big.Int).Set(sig.R)
		r.SetBit(r, bit, r.Bit(bit)^1)
		assert.False(t, Verify(curve, &Signature{R: r, S: sig.S}, digest, key.Public),
			"flipped bit %d of r", bit)

		s := new(big.Int).Set(sig.S)
		s.SetBit(s, bit, s.Bit(bit)^1)
		assert.False(t, Verify(curve, &Signature{R: sig.R, S: s}, digest, key.Public),
			"flipped bit %d of s", bit)
	}

	// A different digest must not verify.
	assert.False(t, Verify(curve, sig, hexDigest("another message"), key.Public))

	// Neither may another party's public key.
	other, err := GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	assert.False(t, Verify(curve, sig, digest, other.Public))
}

func TestVerifyRejectsOutOfRangeSignature(t *testing.T) {
	curve := testCurve43(t)
	key, err := GenerateKey(curve, rand.Reader)
	require.NoError(t, err)

	digest := hexDigest("msg")
	sig, err := Sign(curve, key.D, digest, rand.Reader)
	require.NoError(t, err)

	n := curve.Order()
	zero := big.NewInt(0)

	// Out-of-range values report an invalid signature, not an error.
	assert.False(t, Verify(curve, &Signature{R: zero, S: sig.S}, digest, key.Public))
	assert.False(t, Verify(curve, &Signature{R: sig.R, S: zero}, digest, key.Public))
	assert.False(t, Verify(curve, &Signature{R: n, S: sig.S}, digest, key.Public))
	assert.False(t, Verify(curve, &Signature{R: sig.R, S: n}, digest, key.Public))
	assert.False(t, Verify(curve, &Signature{R: new(big.Int).Neg(sig.R), S: sig.S}, digest, key.Public))
	assert.False(t, Verify(curve, nil, digest, key.Public))
}

func TestSignRequiresPrimeOrder(t *testing.T) {
	// Supersingular curve with composite order 24: group arithmetic
	// works, ECDSA must refuse.
	curve, err := NewFactory().CreateCurve(big.NewInt(1), big.NewInt(0), big.NewInt(23), nil, Infinity())
	require.NoError(t, err)

	_, err = Sign(curve, big.NewInt(5), hexDigest("msg"), rand.Reader)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = GenerateKey(curve, rand.Reader)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	assert.False(t, Verify(curve, &Signature{R: big.NewInt(1), S: big.NewInt(1)}, hexDigest("msg"), curve.Generator()))
}

func TestSignDeterministicWithInjectedRandomness(t *testing.T) {
	curve, err := Secp256k1()
	require.NoError(t, err)

	digest := hexDigest("deterministic")
	priv := big.NewInt(271828182845)

	sig1, err := Sign(curve, priv, digest, mrand.New(mrand.NewSource(42)))
	require.NoError(t, err)
	sig2, err := Sign(curve, priv, digest, mrand.New(mrand.NewSource(42)))
	require.NoError(t, err)

	// Same injected randomness, same ephemeral secret, same signature.
	assert.Equal(t, 0, sig1.R.Cmp(sig2.R))
	assert.Equal(t, 0, sig1.S.Cmp(sig2.S))

	pub := curve.ScalarMult(priv, curve.Generator())
	assert.True(t, Verify(curve, sig1, digest, pub))
}

func TestHashToInt(t *testing.T) {
	h, err := HashToInt("ff")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(255), h)

	h, err = HashToInt("0x0a0b")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0x0a0b), h)

	_, err = HashToInt("not hex")
	assert.Error(t, err)
	_, err = HashToInt("")
	assert.Error(t, err)

	// A malformed digest means an invalid signature, never a panic.
	curve := testCurve43(t)
	assert.False(t, Verify(curve, &Signature{R: big.NewInt(1), S: big.NewInt(1)}, "zzz", curve.Generator()))
}
