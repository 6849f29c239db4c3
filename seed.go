package randgen

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff"
)

const entropyRetries uint64 = 5

// entropySeed reads a seed from r, retrying short or failed reads with exponential backoff
func entropySeed(r io.Reader) (uint64, error) {
	var buf [8]byte
	read := func() error {
		_, err := io.ReadFull(r, buf[:])
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second
	if err := backoff.Retry(read, backoff.WithMaxRetries(b, entropyRetries)); err != nil {
		return 0, fmt.Errorf("could not read seed from entropy source: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// clockSeed is the fallback when no entropy is available
func clockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
