package store

// UseLightKDF lowers the scrypt cost so tests run quickly.
func UseLightKDF(s *SeedFileStore) { s.kdf = scryptParams{N: 1 << 10, R: 8, P: 1} }
