package tinytar

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"hash/crc32"

	crc16 "github.com/sigurn/crc16"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

const defaultChecksumType = sumCRC16

func newHasher(t uint8) hash.Hash {
	switch t {
	case sumCRC32:
		return crc32.NewIEEE()
	case sumCRC16:
		table := crc16.MakeTable(crc16.CRC16_CCITT_FALSE)
		return crc16.New(table)
	case sumXXHash:
		return xxh3.New()
	case sumSHA256:
		return sha256.New()
	case sumBlake2b:
		h, err := blake2b.New512(nil)
		if err != nil {
			panic(err)
		}
		return h
	case sumBlake3:
		fallthrough
	default:
		return blake3.New()
	}
}

func checksumName(t uint8) string {
	switch t {
	case sumCRC32:
		return "crc32"
	case sumCRC16:
		return "crc16"
	case sumXXHash:
		return "xxh3"
	case sumSHA256:
		return "sha256"
	case sumBlake2b:
		return "blake2b"
	case sumBlake3:
		return "blake3"
	default:
		return "unknown"
	}
}

func checksumTypeByName(name string) (uint8, error) {
	switch name {
	case "crc16":
		return sumCRC16, nil
	case "crc32":
		return sumCRC32, nil
	case "xxh3", "xxhash":
		return sumXXHash, nil
	case "sha256":
		return sumSHA256, nil
	case "blake2b":
		return sumBlake2b, nil
	case "blake3":
		return sumBlake3, nil
	default:
		return 0, fmt.Errorf("unknown checksum type: %v", name)
	}
}
