package schema

import (
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// Verify renders rec and compiles it with a real Avro implementation, so that
// Avro naming and union rules are enforced.
func Verify(rec *Record) error {
	_, err := Codec(rec)
	return err
}

// Codec compiles the rendered form of rec into a goavro codec.
func Codec(rec *Record) (*goavro.Codec, error) {
	data, err := Render(rec)
	if err != nil {
		return nil, err
	}

	codec, err := goavro.NewCodec(string(data))
	if err != nil {
		return nil, fmt.Errorf("schema %s rejected by avro: %w", rec.FullName(), err)
	}

	return codec, nil
}
