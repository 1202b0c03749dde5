package kv

import (
	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

// Street road segment yang disimpan di street index. MidPoint [lat, lon] titik tengah segment.
type Street struct {
	EdgeIDx    int32
	MidPoint   []float64
	StreetName string
	RoadClass  string
}

func Encode(streets []Street) ([]byte, error) {
	return binary.Marshal(streets)
}

func Decode(bb []byte) ([]Street, error) {
	var streets []Street
	if err := binary.Unmarshal(bb, &streets); err != nil {
		return nil, err
	}
	return streets, nil
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}
	return bb, nil
}

// CompressStreets encode lalu compress, format value di pebble
func CompressStreets(streets []Street) ([]byte, error) {
	bb, err := Encode(streets)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func LoadStreets(bbCompressed []byte) ([]Street, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	return Decode(bb)
}
