package hashfn

const (
	djb2Init = 5381

	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619

	myHashFactor = 29
)

// LoseLose sums the code points of key.
func LoseLose(key string) int64 {
	var hash int64
	for _, c := range key {
		hash += int64(c)
	}
	return hash
}

// DJB2 is Bernstein's hash*33 + c, wrapping at 64 bits.
func DJB2(key string) int64 {
	var hash int64 = djb2Init
	for _, c := range key {
		hash = ((hash << 5) + hash) + int64(c)
	}
	return hash
}

// SDBM wraps at 64 bits and may go negative.
func SDBM(key string) int64 {
	var hash int64
	for _, c := range key {
		hash = int64(c) + (hash << 6) + (hash << 16) - hash
	}
	return hash
}

// FNV1a is the 32-bit variant.
func FNV1a(key string) int64 {
	var hash uint32 = fnvOffset32
	for _, c := range key {
		hash ^= uint32(c)
		hash *= fnvPrime32
	}
	return int64(hash)
}

// Jenkins is Bob Jenkins' one-at-a-time hash over 32 bits.
func Jenkins(key string) int64 {
	var hash uint32
	for _, c := range key {
		hash += uint32(c)
		hash += hash << 10
		hash ^= hash >> 6
	}
	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return int64(hash)
}

// MyHash is deliberately weak: anagrams always collide.
func MyHash(key string) int64 {
	var hash int64
	for _, c := range key {
		hash += int64(c) * myHashFactor
	}
	return hash
}
