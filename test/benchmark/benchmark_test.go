package benchmark

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

func mustSecp256k1(b *testing.B) *ecc.Curve {
	b.Helper()
	curve, err := ecc.Secp256k1()
	if err != nil {
		b.Fatalf("Secp256k1 failed: %v", err)
	}
	return curve
}

func BenchmarkAdd(b *testing.B) {
	curve := mustSecp256k1(b)
	g := curve.Generator()
	twoG := curve.Double(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curve.Add(g, twoG)
	}
}

func BenchmarkScalarMult(b *testing.B) {
	curve := mustSecp256k1(b)
	g := curve.Generator()
	k, err := rand.Int(rand.Reader, curve.Order())
	if err != nil {
		b.Fatalf("rand.Int failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curve.ScalarMult(k, g)
	}
}

func BenchmarkSign(b *testing.B) {
	curve := mustSecp256k1(b)
	key, err := ecc.GenerateKey(curve, rand.Reader)
	if err != nil {
		b.Fatalf("GenerateKey failed: %v", err)
	}
	sum := sha256.Sum256([]byte("benchmark message"))
	digest := hex.EncodeToString(sum[:])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ecc.Sign(curve, key.D, digest, rand.Reader); err != nil {
			b.Fatalf("Sign failed: %v", err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	curve := mustSecp256k1(b)
	key, err := ecc.GenerateKey(curve, rand.Reader)
	if err != nil {
		b.Fatalf("GenerateKey failed: %v", err)
	}
	sum := sha256.Sum256([]byte("benchmark message"))
	digest := hex.EncodeToString(sum[:])
	sig, err := ecc.Sign(curve, key.D, digest, rand.Reader)
	if err != nil {
		b.Fatalf("Sign failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !ecc.Verify(curve, sig, digest, key.Public) {
			b.Fatal("verification failed")
		}
	}
}

func BenchmarkCreateCurveBruteForce(b *testing.B) {
	// Order counting over F_8191 (2^13 - 1), well inside the
	// brute-force bound.
	factory := ecc.NewFactory()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := factory.CreateCurve(big.NewInt(0), big.NewInt(7), big.NewInt(8191), nil, ecc.Infinity()); err != nil {
			b.Fatalf("CreateCurve failed: %v", err)
		}
	}
}
