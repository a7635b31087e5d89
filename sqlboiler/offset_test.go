package sqlboiler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	datagrid "github.com/nrfta/go-datagrid"
	"github.com/nrfta/go-datagrid/sqlboiler"
)

var _ = Describe("OffsetQueryMods", func() {
	It("returns no mods for empty params", func() {
		mods := sqlboiler.OffsetQueryMods(datagrid.FetchParams{})

		Expect(mods).To(BeEmpty())
	})

	It("renders offset, limit and order by", func() {
		mods := sqlboiler.OffsetQueryMods(datagrid.FetchParams{
			Limit:  10,
			Offset: 20,
			OrderBy: []datagrid.OrderBy{
				{Column: "created_at", Desc: true},
				{Column: "id", Desc: true},
			},
		})

		sql, _ := buildSQL(mods...)

		Expect(sql).To(ContainSubstring(`ORDER BY "created_at" DESC, "id" DESC`))
		Expect(sql).To(ContainSubstring("LIMIT 10"))
		Expect(sql).To(ContainSubstring("OFFSET 20"))
	})

	It("omits OFFSET for the first page", func() {
		mods := sqlboiler.OffsetQueryMods(datagrid.FetchParams{Limit: 10})

		sql, _ := buildSQL(mods...)

		Expect(sql).ToNot(ContainSubstring("OFFSET"))
	})

	It("renders ascending columns without a direction keyword", func() {
		mods := sqlboiler.OffsetQueryMods(datagrid.FetchParams{
			OrderBy: []datagrid.OrderBy{
				{Column: "name", Desc: false},
				{Column: "id", Desc: false},
			},
		})

		sql, _ := buildSQL(mods...)

		Expect(sql).To(ContainSubstring(`ORDER BY "name", "id"`))
	})

	It("prepends the filter predicate", func() {
		mods := sqlboiler.OffsetQueryMods(datagrid.FetchParams{
			Limit:  10,
			Offset: 30,
			Filter: datagrid.FilterSpec{Status: datagrid.StatusInactive},
			OrderBy: []datagrid.OrderBy{
				{Column: "created_at", Desc: true},
			},
		})

		sql, args := buildSQL(mods...)

		Expect(sql).To(ContainSubstring("status = $1"))
		Expect(args).To(Equal([]interface{}{"INACTIVE"}))
	})
})
