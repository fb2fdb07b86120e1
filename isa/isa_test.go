package isa_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/matchgen/isa"
)

var _ = Describe("ISA", func() {
	It("should return every table entry unchanged and in order", func() {
		for _, stem := range isa.DefaultISA.Stems() {
			kinds, ok := isa.DefaultISA.Lookup(stem)
			Expect(ok).To(BeTrue())

			res := isa.Resolve(stem + ".s")

			Expect(res.Aliased).To(BeTrue(), stem)
			Expect(res.Stem).To(Equal(stem))
			Expect(res.Variants).To(Equal(kinds), stem)
		}
	})

	It("should keep the branch variant order", func() {
		res := isa.Resolve("ble")

		Expect(res.Variants).To(Equal([]string{"Ble_S", "Ble_Un_S", "Ble", "Ble_Un"}))
	})

	It("should resolve a placeholder load through its stem", func() {
		res := isa.Resolve("ldloc.N")

		Expect(res.Variants).To(ConsistOf(
			"Ldloc_S", "Ldloc", "Ldloc_0", "Ldloc_1", "Ldloc_2", "Ldloc_3"))
	})

	It("should not let callers mutate the table", func() {
		kinds, _ := isa.DefaultISA.Lookup("br")
		kinds[0] = "Nop"

		again, _ := isa.DefaultISA.Lookup("br")
		Expect(again[0]).To(Equal("Br_S"))
	})

	DescribeTable("should derive a single name for unlisted stems",
		func(mnemonic, want string) {
			res := isa.Resolve(mnemonic)

			Expect(res.Aliased).To(BeFalse())
			Expect(res.Variants).To(Equal([]string{want}))
		},
		Entry("constant load", "ldc.i4.0", "Ldc_I4_0"),
		Entry("negative constant", "ldc.i4.m1", "Ldc_I4_M1"),
		Entry("single token", "box", "Box"),
		Entry("field load", "ldfld", "Ldfld"),
		Entry("upper case inside a segment is folded", "ldstr.ABC", "Ldstr_Abc"),
	)

	It("should derive the same name every time", func() {
		first := isa.Resolve("ldelem.ref")
		second := isa.Resolve("ldelem.ref")

		Expect(first.Variants).To(Equal(second.Variants))
		Expect(first.Variants).To(Equal([]string{"Ldelem_Ref"}))
	})

	It("should pass upper case mnemonics through verbatim", func() {
		res := isa.Resolve("Ldarg.0")

		Expect(res.Aliased).To(BeFalse())
		Expect(res.Variants).To(Equal([]string{"Ldarg_0"}))
	})

	It("should not look up upper case mnemonics", func() {
		res := isa.Resolve("Ble")

		Expect(res.Variants).To(Equal([]string{"Ble"}))
	})

	It("should attach a note to conversions", func() {
		res := isa.Resolve("conv.i4")

		Expect(res.Note).NotTo(BeEmpty())
		Expect(res.Variants).To(Equal([]string{"Conv_I4"}))
	})

	It("should render the table", func() {
		var buf bytes.Buffer
		isa.DefaultISA.Render(&buf)

		Expect(buf.String()).To(ContainSubstring("CIL aliases"))
		Expect(buf.String()).To(ContainSubstring("Brfalse_S Brfalse"))
	})
})

var _ = Describe("Stem", func() {
	It("should cut at the first separator", func() {
		Expect(isa.Stem("ldc.i4.0")).To(Equal("ldc"))
		Expect(isa.Stem("nop")).To(Equal("nop"))
	})
})
