package datagrid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	datagrid "github.com/nrfta/go-datagrid"
)

var _ = Describe("PageRequest", func() {
	It("clamps page numbers below 1", func() {
		Expect(datagrid.PageRequest{Page: 0}.EffectivePage()).To(Equal(1))
		Expect(datagrid.PageRequest{Page: -3}.EffectivePage()).To(Equal(1))
		Expect(datagrid.PageRequest{Page: 7}.EffectivePage()).To(Equal(7))
	})

	It("derives the offset from the effective page", func() {
		Expect(datagrid.PageRequest{Page: 1}.OffsetFor(25)).To(Equal(0))
		Expect(datagrid.PageRequest{Page: 4}.OffsetFor(25)).To(Equal(75))
		Expect(datagrid.PageRequest{Page: 0}.OffsetFor(25)).To(Equal(0))
	})
})

var _ = Describe("PageConfig", func() {
	It("uses the default size when none is requested", func() {
		config := datagrid.NewPageConfig()

		Expect(config.EffectiveSize(0)).To(Equal(datagrid.DefaultPageSize))
		Expect(config.EffectiveSize(-1)).To(Equal(datagrid.DefaultPageSize))
	})

	It("caps oversized requests instead of rejecting them", func() {
		config := datagrid.NewPageConfig()

		Expect(config.EffectiveSize(5000)).To(Equal(datagrid.DefaultMaxPageSize))
	})

	It("passes reasonable sizes through", func() {
		config := datagrid.NewPageConfig()

		Expect(config.EffectiveSize(25)).To(Equal(25))
	})

	It("honors functional options", func() {
		config := datagrid.ApplyPaginateOptions(
			datagrid.WithDefaultSize(10),
			datagrid.WithMaxSize(100),
		)

		Expect(config.EffectiveSize(0)).To(Equal(10))
		Expect(config.EffectiveSize(500)).To(Equal(100))
	})

	It("ignores non-positive option values", func() {
		config := datagrid.ApplyPaginateOptions(
			datagrid.WithDefaultSize(0),
			datagrid.WithMaxSize(-5),
		)

		Expect(config.EffectiveSize(0)).To(Equal(datagrid.DefaultPageSize))
		Expect(config.EffectiveSize(5000)).To(Equal(datagrid.DefaultMaxPageSize))
	})

	It("survives a nil receiver", func() {
		var config *datagrid.PageConfig

		Expect(config.EffectiveSize(0)).To(Equal(datagrid.DefaultPageSize))
	})
})
