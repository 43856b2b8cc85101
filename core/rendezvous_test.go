package core_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flowlattice/paramcore/core"
	"github.com/flowlattice/paramcore/execrt"
)

var _ = Describe("Rendezvous", func() {
	It("delivers values in strict order, one at a time", func() {
		sched := execrt.NewScheduler(context.Background())
		producer := newTestComponent("Producer", sched)
		consumer := newTestComponent("Consumer", sched)

		o, _ := core.NewPortBuilder().WithType(intType).WithParent(producer).BuildOutput("o")
		i, _ := core.NewPortBuilder().WithType(intType).WithParent(consumer).BuildInput("i")
		Expect(o.Connect(i.Port)).To(Succeed())

		ctx := context.Background()
		sendErrs := make(chan error, 1)
		go func() {
			defer close(sendErrs)
			for _, v := range []int{1, 2, 3} {
				if err := o.Send(ctx, v); err != nil {
					sendErrs <- err
					return
				}
			}
		}()

		var got []int
		for k := 0; k < 3; k++ {
			v, err := i.Receive(ctx)
			Expect(err).NotTo(HaveOccurred())
			got = append(got, v.(int))
		}
		Expect(got).To(Equal([]int{1, 2, 3}))

		for err := range sendErrs {
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("propagates a stopped producer to the consumer's next receive", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sched := execrt.NewScheduler(ctx)
		producer := newTestComponent("Producer", sched)
		consumer := newTestComponent("Consumer", sched)

		o, _ := core.NewPortBuilder().WithType(intType).WithParent(producer).BuildOutput("o")
		i, _ := core.NewPortBuilder().WithType(intType).WithParent(consumer).BuildInput("i")
		Expect(o.Connect(i.Port)).To(Succeed())

		// The send's matching consumed signal is never set below, so this
		// call blocks until ctx is canceled by the deferred cancel above.
		go func() { _ = o.Send(ctx, 99) }()

		Eventually(func() bool {
			refs := o.References()
			return len(refs) == 1 && refs[0].Sent.IsSet()
		}).Should(BeTrue())

		producer.Stop()

		_, err := i.Receive(ctx)
		Expect(err).To(HaveOccurred())
		var stoppedErr *core.ComponentStoppedError
		Expect(errors.As(err, &stoppedErr)).To(BeTrue())
		Expect(stoppedErr.State).NotTo(Equal(core.StateStoppedAtIter))
	})
})
