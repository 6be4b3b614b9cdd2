package types

type ValidationVerdict struct {
	IsValid bool
	Reason  string
}

// SignedResponse is an attestation over Digest. Signature is 65 bytes, r || s || v with v in {27, 28}.
type SignedResponse struct {
	Digest    [32]byte
	Signature []byte
}
