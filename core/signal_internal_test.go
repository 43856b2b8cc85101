package core

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Signal", func() {
	It("is level-triggered: Await returns immediately once Set, for every caller", func() {
		s := NewSignal()
		Expect(s.IsSet()).To(BeFalse())

		s.Set()
		Expect(s.IsSet()).To(BeTrue())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		Expect(s.Await(ctx)).To(Succeed())
		Expect(s.Await(ctx)).To(Succeed())
	})

	It("blocks Await until Set, and Clear makes it block again", func() {
		s := NewSignal()
		done := make(chan error, 1)
		go func() {
			done <- s.Await(context.Background())
		}()

		Consistently(done).ShouldNot(Receive())

		s.Set()
		Eventually(done).Should(Receive(BeNil()))

		s.Clear()
		Expect(s.IsSet()).To(BeFalse())
	})

	It("returns the context error when the context is done first", func() {
		s := NewSignal()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.Await(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("awaits every signal concurrently and reports the first context error", func() {
		a, b := NewSignal(), NewSignal()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := awaitAll(ctx, []*Signal{a, b})
		Expect(err).To(HaveOccurred())
	})

	It("returns immediately for an empty signal set", func() {
		Expect(awaitAll(context.Background(), nil)).To(Succeed())
	})
})
