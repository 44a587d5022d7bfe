package sim_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/brownsim/internal/clock"
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/sim"
)

var _ = Describe("Simulation lifecycle", func() {
	var (
		timer   *clock.Manual
		surface *sim.Discard
		s       *sim.Simulation
	)

	BeforeEach(func() {
		timer = clock.NewManual()
		surface = &sim.Discard{}
		s = sim.New(surface, timer, rand.New(rand.NewSource(7)))
	})

	It("starts uninitialized and refuses to run", func() {
		Expect(s.Status()).To(Equal(sim.Uninitialized))
		Expect(s.Run()).To(MatchError(dynamo.ErrNotInitialized))
	})

	Context("after Init", func() {
		BeforeEach(func() {
			Expect(s.Init(sim.DefaultConfig())).To(Succeed())
		})

		It("moves to running on Run", func() {
			Expect(s.Run()).To(Succeed())
			Expect(s.Status()).To(Equal(sim.Running))
			Expect(timer.Active()).To(Equal(1))
		})

		It("moves to stopped on Reset and back to running on Run", func() {
			Expect(s.Run()).To(Succeed())
			s.Reset()
			Expect(s.Status()).To(Equal(sim.Stopped))
			Expect(timer.Active()).To(BeZero())

			Expect(s.Run()).To(Succeed())
			Expect(s.Status()).To(Equal(sim.Running))
			Expect(timer.Active()).To(Equal(1))
		})

		It("never returns to uninitialized", func() {
			Expect(s.Run()).To(Succeed())
			s.Reset()
			Expect(s.Init(sim.DefaultConfig())).To(MatchError(dynamo.ErrAlreadyInitialized))
			Expect(s.Status()).NotTo(Equal(sim.Uninitialized))
		})

		It("issues ticks times particles redraws", func() {
			Expect(s.Run()).To(Succeed())
			for i := 0; i < 12; i++ {
				timer.Fire()
			}
			snap := s.Snapshot()
			Expect(snap.Frame).To(BeEquivalentTo(12))
			Expect(snap.Redraws).To(BeEquivalentTo(120))
			Expect(surface.Clears).To(Equal(120))
			Expect(surface.Circles).To(Equal(1200))
		})

		It("keeps every random force inside the configured range", func() {
			Expect(s.Run()).To(Succeed())
			for i := 0; i < 25; i++ {
				timer.Fire()
				for _, p := range s.Snapshot().Particles {
					f := p.Force()
					Expect(f.X).To(BeNumerically(">=", -5))
					Expect(f.X).To(BeNumerically("<", 5))
					Expect(f.Y).To(BeNumerically(">=", -5))
					Expect(f.Y).To(BeNumerically("<", 5))
				}
			}
		})
	})
})
