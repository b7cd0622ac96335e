package experiment_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/apogee/internal/experiment"
	"github.com/san-kum/apogee/internal/forces"
	"github.com/san-kum/apogee/internal/ivp"
)

var _ = Describe("apogee comparison", func() {
	var (
		reg *experiment.Registry
		p   forces.Projectile
		cfg ivp.Config
	)

	BeforeEach(func() {
		reg = experiment.NewRegistry()
		cfg = ivp.DefaultConfig()
		p = forces.Projectile{
			Gravity:   9.8,
			V0:        928,
			Mass:      4.2e-2,
			DragCoeff: 0.82,
			Area:      3.14e-4,
			Density:   1.225,
			Viscosity: 1.81e-5,
			Length:    4e-2,
		}
	})

	It("reproduces the reference inviscid apogee", func() {
		cmp, err := experiment.Compare(context.Background(), reg, "rk4", p, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmp.Inviscid.Apogee.Height).To(BeNumerically("~", 772.6, 1.0))
	})

	It("shows a sub-0.001% damping effect", func() {
		cmp, err := experiment.Compare(context.Background(), reg, "rk4", p, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmp.PercentDiff).To(BeNumerically(">", 0))
		Expect(cmp.PercentDiff).To(BeNumerically("<", 1e-3))
	})

	It("agrees across fixed-step and adaptive integrators", func() {
		rk4, err := experiment.Compare(context.Background(), reg, "rk4", p, cfg)
		Expect(err).NotTo(HaveOccurred())

		rk45, err := experiment.Compare(context.Background(), reg, "rk45", p, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(rk45.Inviscid.Apogee.Height).To(BeNumerically("~", rk4.Inviscid.Apogee.Height, 0.1))
	})

	It("fails with a non-positive launch velocity", func() {
		p.V0 = -10
		_, err := experiment.Compare(context.Background(), reg, "rk4", p, cfg)
		Expect(err).To(MatchError(ContainSubstring("apogee not reached")))
	})

	It("reports the crossing time near the drag-free bound", func() {
		// Drag only shortens the ascent, so t_zero < v0/g.
		cmp, err := experiment.Compare(context.Background(), reg, "rk4", p, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmp.Inviscid.Apogee.CrossingTime).To(BeNumerically("<", p.V0/p.Gravity))
		Expect(cmp.Inviscid.Apogee.CrossingTime).To(BeNumerically(">", 0))
	})
})
