package restart_test

import (
	"bytes"
	"math"
	"path/filepath"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pairsim/internal/comm"
	"github.com/san-kum/pairsim/internal/restart"
)

type record struct {
	cut    float64
	tiny   float64
	offset bool
	mix    int32
	flag   bool
	name   string
}

func writeRecord(w *restart.Writer, rec record) {
	w.Float64(rec.cut)
	w.Float64(rec.tiny)
	w.Bool32(rec.offset)
	w.Int32(rec.mix)
	if rec.flag {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
	w.String(rec.name)
}

func readRecord(r *restart.Reader) record {
	return record{
		cut:    r.Float64(),
		tiny:   r.Float64(),
		offset: r.Bool32(),
		mix:    r.Int32(),
		flag:   r.Flag(),
		name:   r.String(),
	}
}

var sample = record{
	cut:    2.5,
	tiny:   math.Nextafter(1, 2),
	offset: true,
	mix:    2,
	flag:   true,
	name:   "lj/cut/coul/cut",
}

var _ = Describe("Codec", func() {
	It("round-trips every field on a single rank", func() {
		var buf bytes.Buffer
		w := restart.NewWriter(&buf, comm.Serial{})
		writeRecord(w, sample)
		Expect(w.Err()).NotTo(HaveOccurred())
		Expect(w.Len()).To(Equal(int64(8 + 8 + 4 + 4 + 1 + 4 + len(sample.name))))

		r := restart.NewReader(bytes.NewReader(buf.Bytes()), comm.Serial{})
		got := readRecord(r)
		Expect(r.Err()).NotTo(HaveOccurred())
		Expect(got).To(Equal(sample))
		Expect(math.Float64bits(got.tiny)).To(Equal(math.Float64bits(sample.tiny)))
	})

	It("fails closed on a truncated stream", func() {
		var buf bytes.Buffer
		writeRecord(restart.NewWriter(&buf, nil), sample)

		short := buf.Bytes()[:buf.Len()-5]
		r := restart.NewReader(bytes.NewReader(short), nil)
		readRecord(r)
		Expect(r.Err()).To(MatchError(restart.ErrRestartFormat))
	})

	It("rejects out-of-range flags", func() {
		r := restart.NewReader(bytes.NewReader([]byte{7}), nil)
		r.Flag()
		Expect(r.Err()).To(MatchError(restart.ErrRestartFormat))
	})

	It("only writes on the root rank", func() {
		ranks := comm.NewWorld(2)
		var buf bytes.Buffer
		w := restart.NewWriter(&buf, ranks[1])
		writeRecord(w, sample)
		Expect(w.Err()).NotTo(HaveOccurred())
		Expect(buf.Len()).To(BeZero())
	})

	Context("with several in-process ranks", func() {
		const size = 4

		readAll := func(data []byte) ([]record, []error) {
			ranks := comm.NewWorld(size)
			recs := make([]record, size)
			errs := make([]error, size)

			var wg sync.WaitGroup
			for _, rk := range ranks {
				wg.Add(1)
				go func(rk *comm.Rank) {
					defer GinkgoRecover()
					defer wg.Done()
					var r *restart.Reader
					if rk.Rank() == 0 {
						r = restart.NewReader(bytes.NewReader(data), rk)
					} else {
						r = restart.NewReader(nil, rk)
					}
					recs[rk.Rank()] = readRecord(r)
					errs[rk.Rank()] = r.Err()
				}(rk)
			}
			wg.Wait()
			return recs, errs
		}

		It("broadcasts bit-identical values to every rank", func() {
			var buf bytes.Buffer
			writeRecord(restart.NewWriter(&buf, nil), sample)

			recs, errs := readAll(buf.Bytes())
			for k := 0; k < size; k++ {
				Expect(errs[k]).NotTo(HaveOccurred())
				Expect(recs[k]).To(Equal(sample))
			}
		})

		It("fails on every rank at the same field", func() {
			var buf bytes.Buffer
			writeRecord(restart.NewWriter(&buf, nil), sample)

			_, errs := readAll(buf.Bytes()[:12])
			for k := 0; k < size; k++ {
				Expect(errs[k]).To(MatchError(restart.ErrRestartFormat))
			}
		})
	})

	It("round-trips through a compressed file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "pair.restart.zst")

		out, err := restart.Create(path, comm.Serial{})
		Expect(err).NotTo(HaveOccurred())
		w := restart.NewWriter(out, comm.Serial{})
		writeRecord(w, sample)
		Expect(w.Err()).NotTo(HaveOccurred())
		Expect(out.Close()).To(Succeed())

		in, err := restart.Open(path, comm.Serial{})
		Expect(err).NotTo(HaveOccurred())
		defer in.Close()
		r := restart.NewReader(in, comm.Serial{})
		Expect(readRecord(r)).To(Equal(sample))
		Expect(r.Err()).NotTo(HaveOccurred())
	})
})
