package sqlboiler_test

import (
	"time"

	"github.com/aarondl/null/v8"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	datagrid "github.com/nrfta/go-datagrid"
	"github.com/nrfta/go-datagrid/sqlboiler"
)

var _ = Describe("KeysetQueryMods", func() {
	var (
		boundary time.Time
		order    []datagrid.OrderBy
	)

	BeforeEach(func() {
		boundary = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		order = []datagrid.OrderBy{
			{Column: "created_at", Desc: true},
			{Column: "id", Desc: true},
		}
	})

	It("renders the expanded composite comparison for a descending order", func() {
		mods := sqlboiler.KeysetQueryMods(datagrid.FetchParams{
			Limit:   11,
			Cursor:  &datagrid.Cursor{CreatedAt: boundary, ID: 42},
			OrderBy: order,
		})

		sql, args := buildSQL(mods...)

		Expect(sql).To(ContainSubstring("(created_at < $1 OR (created_at = $2 AND id < $3))"))
		Expect(args).To(Equal([]interface{}{boundary, boundary, int64(42)}))
	})

	It("uses > for an ascending leading column", func() {
		asc := []datagrid.OrderBy{
			{Column: "created_at", Desc: false},
			{Column: "id", Desc: false},
		}

		mods := sqlboiler.KeysetQueryMods(datagrid.FetchParams{
			Cursor:  &datagrid.Cursor{CreatedAt: boundary, ID: 42},
			OrderBy: asc,
		})

		sql, _ := buildSQL(mods...)

		Expect(sql).To(ContainSubstring("(created_at > $1 OR (created_at = $2 AND id > $3))"))
	})

	It("emits no boundary for a nil cursor", func() {
		mods := sqlboiler.KeysetQueryMods(datagrid.FetchParams{
			Limit:   11,
			OrderBy: order,
		})

		sql, args := buildSQL(mods...)

		Expect(sql).ToNot(ContainSubstring("created_at <"))
		Expect(args).To(BeEmpty())
	})

	It("emits no boundary when the ordering names a column the cursor lacks", func() {
		odd := []datagrid.OrderBy{{Column: "view_count", Desc: true}}

		mods := sqlboiler.KeysetQueryMods(datagrid.FetchParams{
			Cursor:  &datagrid.Cursor{CreatedAt: boundary, ID: 42},
			OrderBy: odd,
		})

		sql, _ := buildSQL(mods...)

		Expect(sql).ToNot(ContainSubstring("view_count <"))
	})

	It("numbers the boundary parameters after the filter parameters", func() {
		mods := sqlboiler.KeysetQueryMods(datagrid.FetchParams{
			Limit:   6,
			Cursor:  &datagrid.Cursor{CreatedAt: boundary, ID: 42},
			Filter:  datagrid.FilterSpec{Search: null.StringFrom("user 5")},
			OrderBy: order,
		})

		sql, args := buildSQL(mods...)

		Expect(sql).To(ContainSubstring("(name ILIKE $1 OR email ILIKE $2)"))
		Expect(sql).To(ContainSubstring("(created_at < $3 OR (created_at = $4 AND id < $5))"))
		Expect(args).To(HaveLen(5))
		Expect(sql).To(ContainSubstring("LIMIT 6"))
	})

	It("orders by the keyset ordering", func() {
		mods := sqlboiler.KeysetQueryMods(datagrid.FetchParams{OrderBy: order})

		sql, _ := buildSQL(mods...)

		Expect(sql).To(ContainSubstring(`ORDER BY "created_at" DESC, "id" DESC`))
	})
})
