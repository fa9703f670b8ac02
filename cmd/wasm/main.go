//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Global map of constructed curves, keyed by a caller-chosen handle.
var curves = make(map[string]*ecc.Curve)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("go-ecc WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"CreateCurve": js.FuncOf(CreateCurve),
		"Sign":        js.FuncOf(Sign),
		"Verify":      js.FuncOf(Verify),
	})

	<-c
}

// CreateCurve validates curve parameters and stores the curve under a
// handle.
// Arguments:
// 0: handle (string)
// 1: JSON string of parameters {a, b, p, order?, gx?, gy?} (hex strings)
// Returns:
// "ok" or an error string.
func CreateCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (handle, jsonParams)"
	}
	handle := args[0].String()

	type paramsInput struct {
		A     string `json:"a"`
		B     string `json:"b"`
		P     string `json:"p"`
		Order string `json:"order,omitempty"`
		Gx    string `json:"gx,omitempty"`
		Gy    string `json:"gy,omitempty"`
	}
	var in paramsInput
	if err := json.Unmarshal([]byte(args[1].String()), &in); err != nil {
		return "error: " + err.Error()
	}

	a, ok1 := new(big.Int).SetString(in.A, 16)
	b, ok2 := new(big.Int).SetString(in.B, 16)
	p, ok3 := new(big.Int).SetString(in.P, 16)
	if !ok1 || !ok2 || !ok3 {
		return "error: a, b and p must be hex integers"
	}

	var order *big.Int
	if in.Order != "" {
		o, ok := new(big.Int).SetString(in.Order, 16)
		if !ok {
			return "error: order must be a hex integer"
		}
		order = o
	}

	generator := ecc.Infinity()
	if in.Gx != "" && in.Gy != "" {
		gx, ok1 := new(big.Int).SetString(in.Gx, 16)
		gy, ok2 := new(big.Int).SetString(in.Gy, 16)
		if !ok1 || !ok2 {
			return "error: gx and gy must be hex integers"
		}
		generator = ecc.NewPoint(gx, gy)
	}

	curve, err := ecc.NewFactory().CreateCurve(a, b, p, order, generator)
	if err != nil {
		return "error: " + err.Error()
	}
	curves[handle] = curve
	return "ok"
}

// Sign produces a signature over a hex digest.
// Arguments:
// 0: curve handle (string)
// 1: private key (hex string)
// 2: digest (hex string)
// Returns:
// JSON {"r": hex, "s": hex} or an error string.
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (handle, privateKey, digest)"
	}
	curve, ok := curves[args[0].String()]
	if !ok {
		return "error: unknown curve handle"
	}
	priv, ok := new(big.Int).SetString(args[1].String(), 16)
	if !ok {
		return "error: private key must be a hex integer"
	}

	sig, err := ecc.Sign(curve, priv, args[2].String(), rand.Reader)
	if err != nil {
		return "error: " + err.Error()
	}

	out, err := json.Marshal(map[string]string{
		"r": sig.R.Text(16),
		"s": sig.S.Text(16),
	})
	if err != nil {
		return "error: " + err.Error()
	}
	return string(out)
}

// Verify checks a signature over a hex digest.
// Arguments:
// 0: curve handle (string)
// 1: JSON {"r": hex, "s": hex}
// 2: digest (hex string)
// 3: public key x (hex string)
// 4: public key y (hex string)
// Returns:
// bool, or an error string for malformed input.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return "error: expected 5 arguments (handle, sigJSON, digest, pubX, pubY)"
	}
	curve, ok := curves[args[0].String()]
	if !ok {
		return "error: unknown curve handle"
	}

	var sigIn struct {
		R string `json:"r"`
		S string `json:"s"`
	}
	if err := json.Unmarshal([]byte(args[1].String()), &sigIn); err != nil {
		return "error: " + err.Error()
	}
	r, ok1 := new(big.Int).SetString(sigIn.R, 16)
	s, ok2 := new(big.Int).SetString(sigIn.S, 16)
	if !ok1 || !ok2 {
		return "error: r and s must be hex integers"
	}

	px, ok1 := new(big.Int).SetString(args[3].String(), 16)
	py, ok2 := new(big.Int).SetString(args[4].String(), 16)
	if !ok1 || !ok2 {
		return "error: public key must be hex integers"
	}

	return ecc.Verify(curve, &ecc.Signature{R: r, S: s}, args[2].String(), ecc.NewPoint(px, py))
}
