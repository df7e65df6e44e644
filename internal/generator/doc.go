// Package generator composes entropy sources, the xorshift mixer and alphabet mappers into
// the four named string generation strategies.
//
//	xorshift       seeded Mersenne Twister, xorshift32 mixed, modulo 62
//	hardware       RDRAND, modulo 62
//	std-random     seeded Mersenne Twister, uniform [0,61]
//	std-my-random  Mersenne Twister seeded from the OS random device, uniform [0,61]
//
// None of the strategies reach the two symbol characters at the tail of the alphabet.
// The hardware strategy yields an empty string instead of an error when RDRAND is missing.
package generator
