// Package main provides the entry point of randomstring, a demonstration tool that
// generates random strings with four strategies built on different entropy sources:
// a xorshift-mixed Mersenne Twister, the RDRAND instruction, a Mersenne Twister with
// uniform sampling, and a Mersenne Twister seeded from the operating system random device.
//
// Without arguments it prints one string. With any argument it prints the settings and
// one section per strategy, and writes the same sections to the output file.
package main
