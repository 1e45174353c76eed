package server

// Export unexported functions for testing
var (
	VerifySignatureForTest         = verifySignature
	DecodeTransportEncodingForTest = decodeTransportEncoding
)
