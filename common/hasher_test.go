package common

import "testing"

func TestKeccak256_KnownHash(t *testing.T) {
	// Keccak-256 of the empty input starts with 0xc5, 0xd2, 0x46, 0x01.
	hash := Keccak256([]byte{})
	want := [4]byte{0xc5, 0xd2, 0x46, 0x01}
	for i := 0; i < len(want); i++ {
		if hash[i] != want[i] {
			t.Fatalf("unexpected hash of empty input: %x", hash)
		}
	}
}

func TestKeccak256_IsDeterministic(t *testing.T) {
	data := []byte("hello")
	if Keccak256(data) != Keccak256(data) {
		t.Errorf("hashing is not deterministic")
	}
}

func TestStringHasher_DistinguishesKeys(t *testing.T) {
	h := StringHasher{}
	a, b := "key-a", "key-b"

	if h.Hash(&a) == h.Hash(&b) {
		t.Errorf("distinct keys map to the same hash")
	}
	if h.Hash(&a) != h.Hash(&a) {
		t.Errorf("hashing is not deterministic")
	}
}

func TestBytesHasher_DistinguishesKeys(t *testing.T) {
	h := BytesHasher{}
	a, b := []byte{1, 2, 3}, []byte{3, 2, 1}

	if h.Hash(&a) == h.Hash(&b) {
		t.Errorf("distinct keys map to the same hash")
	}
}

func TestHashers_ImplementHasherInterface(t *testing.T) {
	var _ Hasher[string] = StringHasher{}
	var _ Hasher[[]byte] = BytesHasher{}
}
