package repository

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"WavePull/internal/domain/models"
)

// SAC binary layout: 70 float32 words, 40 int32 words, 192 bytes of
// 8-character fields (kevnm is 16), then npts float32 samples.
const (
	sacHeaderBytes = 632
	sacFloatWords  = 70
	sacIntWords    = 40

	sacWordDelta = 0
	sacWordB     = 5
	sacWordUser9 = 49

	sacIntNzyear = 0
	sacIntNzjday = 1
	sacIntNzhour = 2
	sacIntNzmin  = 3
	sacIntNzsec  = 4
	sacIntNzmsec = 5
	sacIntNvhdr  = 6
	sacIntNpts   = 9

	sacOffKstnm  = 440
	sacOffKhole  = 464
	sacOffKcmpnm = 600
	sacOffKnetwk = 608
)

// SACReader parses single-channel SAC binary files. SAC stores one segment
// per file, so no in-file merging applies.
type SACReader struct{}

func NewSACReader() *SACReader { return &SACReader{} }

func (*SACReader) Read(path string) ([]models.SampleSeries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sac file: %w", err)
	}
	if len(raw) < sacHeaderBytes {
		return nil, fmt.Errorf("sac file %s: truncated header (%d bytes)", path, len(raw))
	}

	order, err := sacByteOrder(raw)
	if err != nil {
		return nil, fmt.Errorf("sac file %s: %w", path, err)
	}

	fword := func(i int) float64 {
		return float64(math.Float32frombits(order.Uint32(raw[i*4 : i*4+4])))
	}
	iword := func(i int) int32 {
		return int32(order.Uint32(raw[(sacFloatWords+i)*4 : (sacFloatWords+i)*4+4]))
	}
	sfield := func(off, n int) string {
		s := strings.TrimRight(string(raw[off:off+n]), " \x00")
		if s == "-12345" {
			return ""
		}
		return s
	}

	delta := fword(sacWordDelta)
	if delta <= 0 {
		return nil, fmt.Errorf("sac file %s: non-positive delta %g", path, delta)
	}
	npts := int(iword(sacIntNpts))
	if npts < 0 || len(raw) < sacHeaderBytes+npts*4 {
		return nil, fmt.Errorf("sac file %s: npts %d exceeds file size", path, npts)
	}

	start := time.Date(
		int(iword(sacIntNzyear)), 1, 1,
		int(iword(sacIntNzhour)), int(iword(sacIntNzmin)), int(iword(sacIntNzsec)),
		int(iword(sacIntNzmsec))*int(time.Millisecond), time.UTC,
	).AddDate(0, 0, int(iword(sacIntNzjday))-1)
	// b is the begin offset of the first sample from the reference time.
	start = start.Add(time.Duration(math.Round(fword(sacWordB) * float64(time.Second))))

	data := make([]float64, npts)
	for i := 0; i < npts; i++ {
		off := sacHeaderBytes + i*4
		data[i] = float64(math.Float32frombits(order.Uint32(raw[off : off+4])))
	}

	s := models.SampleSeries{
		Network:     sfield(sacOffKnetwk, 8),
		Station:     sfield(sacOffKstnm, 8),
		Location:    sfield(sacOffKhole, 8),
		Channel:     sfield(sacOffKcmpnm, 8),
		SampleRate:  1 / delta,
		Start:       start,
		Data:        data,
		Format:      models.FormatSAC,
		Sentinel:    fword(sacWordUser9),
		HasSentinel: true,
	}
	return []models.SampleSeries{s}, nil
}

// sacByteOrder detects endianness from the nvhdr word, which holds a small
// version number in a well-formed file.
func sacByteOrder(raw []byte) (binary.ByteOrder, error) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		v := int32(order.Uint32(raw[(sacFloatWords+sacIntNvhdr)*4 : (sacFloatWords+sacIntNvhdr)*4+4]))
		if v >= 1 && v <= 10 {
			return order, nil
		}
	}
	return nil, fmt.Errorf("unrecognized header version")
}
