// Package entropy provides the raw random sources used by the string generators.
//
// Three variants exist: HardwareRng backed by the RDRAND instruction, OsRng backed by a
// scoped handle on the operating system random device, and SeededPrng, a Mersenne Twister
// seeded once. All of them satisfy Source.
package entropy
