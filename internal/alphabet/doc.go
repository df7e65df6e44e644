// Package alphabet maps raw random integers onto the fixed 64 character output alphabet.
// It provides a direct modulo mapper and a uniform range sampler.
package alphabet
