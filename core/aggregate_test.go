package core_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flowlattice/paramcore/core"
	"github.com/flowlattice/paramcore/execrt"
	"github.com/flowlattice/paramcore/tensor"
)

var _ = Describe("List fan-in per element", func() {
	It("assembles independently connected scalar producers into one ordered list", func() {
		sched := execrt.NewScheduler(context.Background())

		producerA := newTestComponent("ProducerA", sched)
		producerB := newTestComponent("ProducerB", sched)
		collector := newTestComponent("Collector", sched)

		a, _ := core.NewPortBuilder().WithType(tensorType).WithParent(producerA).BuildOutput("a")
		b, _ := core.NewPortBuilder().WithType(tensorType).WithParent(producerB).BuildOutput("b")
		l, _ := core.NewPortBuilder().WithType(listType).WithParent(collector).BuildInput("l")

		dst1, err := l.Select(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Connect(dst1)).To(Succeed())

		dst0, err := l.Select(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Connect(dst0)).To(Succeed())

		tA := tensor.Scalar(1)
		tB := tensor.Scalar(2)
		Expect(a.SetValue(tA)).To(Succeed())
		Expect(b.SetValue(tB)).To(Succeed())

		v, ok := l.Value()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal([]tensor.Tensor{tB, tA}))
	})

	It("reverts to a fresh empty cell once the last aggregated element is disconnected", func() {
		sched := execrt.NewScheduler(context.Background())
		producer := newTestComponent("Producer", sched)
		collector := newTestComponent("Collector", sched)

		a, _ := core.NewPortBuilder().WithType(tensorType).WithParent(producer).BuildOutput("a")
		l, _ := core.NewPortBuilder().WithType(listType).WithParent(collector).BuildInput("l")

		dst, err := l.Select(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Connect(dst)).To(Succeed())
		Expect(a.SetValue(tensor.Scalar(9))).To(Succeed())

		_, ok := l.Value()
		Expect(ok).To(BeTrue())

		Expect(a.Disconnect(dst)).To(Succeed())

		_, ok = l.Value()
		Expect(ok).To(BeFalse())
	})
})
