// Package export writes placed pocket instances as zstd-compressed JSON lines.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
)

// FileName is the name of the instance dump inside an output directory.
const FileName = "pockets.jsonl.zst"

// WriteFile writes instances to dir/FileName, creating dir if needed.
func WriteFile(dir string, instances []pocket.Instance) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteInstances(f, instances); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, f.Close()
}

// WriteInstances encodes one JSON object per line through a zstd encoder.
func WriteInstances(w io.Writer, instances []pocket.Instance) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(enc, 128*1024)
	for _, inst := range instances {
		b, err := json.Marshal(inst)
		if err != nil {
			_ = enc.Close()
			return err
		}
		if _, err := bw.Write(b); err != nil {
			_ = enc.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = enc.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// ReadFile reads instances written by WriteFile.
func ReadFile(path string) ([]pocket.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	insts, err := ReadInstances(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return insts, nil
}

// ReadInstances decodes a stream written by WriteInstances.
func ReadInstances(r io.Reader) ([]pocket.Instance, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var out []pocket.Instance
	for line := 1; sc.Scan(); line++ {
		var inst pocket.Instance
		if err := json.Unmarshal(sc.Bytes(), &inst); err != nil {
			return nil, fmt.Errorf("line %d: unmarshal: %w", line, err)
		}
		out = append(out, inst)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
