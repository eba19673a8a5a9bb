package mersenne_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mersenne/internal/mersenne"
)

var _ = Describe("Resolver", func() {
	var ps *mersenne.ParameterSet

	Context("with three primaries", func() {
		It("computes the frequency", func() {
			ps = &mersenne.ParameterSet{
				Length:     mersenne.Float(0.65),
				Tension:    mersenne.Float(80),
				LinearMass: mersenne.Float(0.005),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(*ps.Frequency).To(BeNumerically("~", 0.65/2*math.Sqrt(80/0.005), 1e-9))
			Expect(ps.Radius).To(BeNil())
			Expect(ps.Diameter).To(BeNil())
		})

		DescribeTable("recovers each removed primary",
			func(target mersenne.Primary) {
				full := &mersenne.ParameterSet{
					Length:     mersenne.Float(0.65),
					Tension:    mersenne.Float(80),
					LinearMass: mersenne.Float(0.005),
				}
				Expect(mersenne.Complete(full)).To(Succeed())
				want, _ := full.Get(target)

				ps = full.Clone()
				ps.Clear(target)
				Expect(mersenne.Complete(ps)).To(Succeed())
				got, ok := ps.Get(target)
				Expect(ok).To(BeTrue())
				Expect(got).To(BeNumerically("~", want, want*1e-9))
			},
			Entry("frequency", mersenne.PrimaryFrequency),
			Entry("tension", mersenne.PrimaryTension),
			Entry("linear mass", mersenne.PrimaryLinearMass),
			Entry("length", mersenne.PrimaryLength),
		)
	})

	Context("with a note instead of a frequency", func() {
		It("derives 440 Hz for A4 and then the length", func() {
			ps = &mersenne.ParameterSet{
				Note:       mersenne.String("a"),
				Octave:     mersenne.Int(4),
				Tension:    mersenne.Float(80),
				LinearMass: mersenne.Float(0.005),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(*ps.Frequency).To(Equal(440.0))
			want, err := mersenne.Length(0.005, 80, 440)
			Expect(err).NotTo(HaveOccurred())
			Expect(*ps.Length).To(BeNumerically("~", want, 1e-12))
		})

		It("uses the default octave and base frequency", func() {
			ps = &mersenne.ParameterSet{
				Note:       mersenne.String("A"),
				Tension:    mersenne.Float(80),
				LinearMass: mersenne.Float(0.005),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(*ps.Frequency).To(Equal(440.0))
		})

		It("honours the resolver's configured defaults", func() {
			r := &mersenne.Resolver{Octave: 3, BaseFrequency: 415}
			ps = &mersenne.ParameterSet{
				Note:       mersenne.String("a"),
				Tension:    mersenne.Float(80),
				LinearMass: mersenne.Float(0.005),
			}
			Expect(r.Complete(ps)).To(Succeed())
			Expect(*ps.Frequency).To(Equal(207.5))
		})

		It("keeps an explicit frequency over the note", func() {
			ps = &mersenne.ParameterSet{
				Note:       mersenne.String("a"),
				Frequency:  mersenne.Float(100),
				Tension:    mersenne.Float(80),
				LinearMass: mersenne.Float(0.005),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(*ps.Frequency).To(Equal(100.0))
		})

		It("fails on an unknown note", func() {
			ps = &mersenne.ParameterSet{
				Note:       mersenne.String("h"),
				Tension:    mersenne.Float(80),
				LinearMass: mersenne.Float(0.005),
			}
			err := mersenne.Complete(ps)
			Expect(err).To(MatchError(mersenne.ErrUnknownNote))
			var ne *mersenne.UnknownNoteError
			Expect(err).To(BeAssignableToTypeOf(ne))
		})
	})

	Context("with string geometry", func() {
		It("derives radius and linear mass from the diameter, then the length", func() {
			ps = &mersenne.ParameterSet{
				Diameter:    mersenne.Float(0.001),
				VolumicMass: mersenne.Float(7850),
				Tension:     mersenne.Float(500),
				Frequency:   mersenne.Float(300),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(*ps.Radius).To(Equal(0.0005))
			mu := 7850 * math.Pi * 0.0005 * 0.0005
			Expect(*ps.LinearMass).To(BeNumerically("~", mu, 1e-15))
			want, _ := mersenne.Length(mu, 500, 300)
			Expect(*ps.Length).To(BeNumerically("~", want, 1e-12))
			Expect(*ps.Diameter).To(Equal(0.001))
		})

		It("lets the diameter override a supplied radius", func() {
			ps = &mersenne.ParameterSet{
				Diameter:    mersenne.Float(0.002),
				Radius:      mersenne.Float(0.5),
				VolumicMass: mersenne.Float(7850),
				Tension:     mersenne.Float(500),
				Frequency:   mersenne.Float(300),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(*ps.Radius).To(Equal(0.001))
		})

		It("back-fills radius and diameter from the computed linear mass", func() {
			ps = &mersenne.ParameterSet{
				VolumicMass: mersenne.Float(1140),
				Tension:     mersenne.Float(60),
				Frequency:   mersenne.Float(196),
				Length:      mersenne.Float(0.65),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(ps.LinearMass).NotTo(BeNil())
			r, err := mersenne.LinearMassToRadius(*ps.LinearMass, 1140)
			Expect(err).NotTo(HaveOccurred())
			Expect(*ps.Radius).To(BeNumerically("~", r, 1e-15))
			Expect(*ps.Diameter).To(BeNumerically("~", 2*r, 1e-15))
		})

		It("fills the diameter from a supplied radius", func() {
			ps = &mersenne.ParameterSet{
				Radius:      mersenne.Float(0.0004),
				VolumicMass: mersenne.Float(7850),
				Tension:     mersenne.Float(100),
				Length:      mersenne.Float(0.65),
			}
			Expect(mersenne.Complete(ps)).To(Succeed())
			Expect(*ps.Diameter).To(Equal(0.0008))
			Expect(ps.Frequency).NotTo(BeNil())
		})
	})

	Context("when the set is not solvable", func() {
		It("reports nothing to compute when all primaries are known", func() {
			ps = &mersenne.ParameterSet{
				Frequency:  mersenne.Float(100),
				Tension:    mersenne.Float(80),
				LinearMass: mersenne.Float(0.005),
				Length:     mersenne.Float(0.65),
			}
			Expect(mersenne.Complete(ps)).To(MatchError(mersenne.ErrNothingToCompute))
		})

		It("reports an underdetermined set naming the missing primaries", func() {
			ps = &mersenne.ParameterSet{
				Frequency: mersenne.Float(100),
				Tension:   mersenne.Float(80),
			}
			err := mersenne.Complete(ps)
			Expect(err).To(MatchError(mersenne.ErrUnderdetermined))

			var ue *mersenne.UnderdeterminedError
			Expect(err).To(BeAssignableToTypeOf(ue))
			ue = err.(*mersenne.UnderdeterminedError)
			Expect(ue.Missing).To(Equal([]mersenne.Primary{mersenne.PrimaryLinearMass, mersenne.PrimaryLength}))
			Expect(err.Error()).To(ContainSubstring("linear_mass"))
			Expect(err.Error()).To(ContainSubstring("length"))
		})

		It("rejects non-positive inputs", func() {
			ps = &mersenne.ParameterSet{
				Frequency:  mersenne.Float(100),
				Tension:    mersenne.Float(-80),
				LinearMass: mersenne.Float(0.005),
			}
			Expect(mersenne.Complete(ps)).To(MatchError(mersenne.ErrInvalidValue))
		})

		It("rejects a zero volumic mass", func() {
			ps = &mersenne.ParameterSet{
				Diameter:    mersenne.Float(0.001),
				VolumicMass: mersenne.Float(0),
				Tension:     mersenne.Float(500),
				Frequency:   mersenne.Float(300),
			}
			Expect(mersenne.Complete(ps)).To(MatchError(mersenne.ErrInvalidValue))
		})
	})
})

var _ = Describe("Resolve", func() {
	It("reports length when the note fills frequency", func() {
		ps := &mersenne.ParameterSet{
			Note:       mersenne.String("e"),
			Tension:    mersenne.Float(80),
			LinearMass: mersenne.Float(0.005),
		}
		computed, err := mersenne.Resolve(ps)
		Expect(err).NotTo(HaveOccurred())
		Expect(computed).To(Equal(mersenne.PrimaryLength))
		Expect(ps.Length).NotTo(BeNil())
	})

	It("reports tension when the geometry fills linear mass", func() {
		ps := &mersenne.ParameterSet{
			Frequency:   mersenne.Float(82.41),
			Length:      mersenne.Float(0.65),
			Diameter:    mersenne.Float(0.0011),
			VolumicMass: mersenne.Float(7850),
		}
		computed, err := mersenne.Resolve(ps)
		Expect(err).NotTo(HaveOccurred())
		Expect(computed).To(Equal(mersenne.PrimaryTension))
	})

	It("fails like Complete when nothing is missing", func() {
		ps := &mersenne.ParameterSet{
			Frequency:  mersenne.Float(100),
			Tension:    mersenne.Float(80),
			LinearMass: mersenne.Float(0.005),
			Length:     mersenne.Float(0.65),
		}
		_, err := mersenne.Resolve(ps)
		Expect(err).To(MatchError(mersenne.ErrNothingToCompute))
	})
})

var _ = Describe("Primary", func() {
	It("round-trips through its name", func() {
		for _, p := range mersenne.Primaries {
			got, ok := mersenne.ParsePrimary(p.String())
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(p))
		}
		_, ok := mersenne.ParsePrimary("note")
		Expect(ok).To(BeFalse())
	})
})
