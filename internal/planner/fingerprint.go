package planner

import (
	"encoding/binary"
	"math"

	"github.com/Domenick1991/airroute/internal/domain"
	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes every field of every flight in order. Two schedules with
// the same flights in the same order share a fingerprint.
func Fingerprint(flights []domain.Flight) uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	put(uint64(len(flights)))
	for _, f := range flights {
		put(uint64(f.FlightNo))
		put(uint64(f.StartCity))
		put(uint64(f.EndCity))
		put(uint64(f.DepartureTime))
		put(uint64(f.ArrivalTime))
		put(math.Float64bits(f.Fare))
	}
	return d.Sum64()
}
