package datagrid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	datagrid "github.com/nrfta/go-datagrid"
)

var _ = Describe("SortSpec", func() {
	Describe("ParseSort", func() {
		It("parses field and direction", func() {
			s := datagrid.ParseSort("name:asc")

			Expect(s.Field).To(Equal("name"))
			Expect(s.Desc).To(BeFalse())
		})

		It("defaults to createdAt:desc for empty input", func() {
			s := datagrid.ParseSort("")

			Expect(s.Field).To(Equal("createdAt"))
			Expect(s.Desc).To(BeTrue())
		})

		It("coerces fields outside the allowlist to the default", func() {
			for _, raw := range []string{
				"password:asc",
				"secret_column:desc",
				"created_at; DROP TABLE people:asc",
				"id)ableist:desc",
			} {
				s := datagrid.ParseSort(raw)
				Expect(s.Field).To(Equal("createdAt"), "input %q", raw)
			}
		})

		It("keeps the requested direction when coercing the field", func() {
			s := datagrid.ParseSort("nope:asc")

			Expect(s.Field).To(Equal("createdAt"))
			Expect(s.Desc).To(BeFalse())
		})

		It("defaults direction to desc unless explicitly asc", func() {
			Expect(datagrid.ParseSort("name").Desc).To(BeTrue())
			Expect(datagrid.ParseSort("name:descending").Desc).To(BeTrue())
			Expect(datagrid.ParseSort("name:ASC").Desc).To(BeFalse())
		})
	})

	Describe("OrderBy", func() {
		It("maps API fields to database columns", func() {
			ob := datagrid.SortSpec{Field: "createdAt", Desc: true}.OrderBy()

			Expect(ob).To(Equal([]datagrid.OrderBy{
				{Column: "created_at", Desc: true},
				{Column: "id", Desc: true},
			}))
		})

		It("appends the id tiebreaker to non-id sorts", func() {
			ob := datagrid.SortSpec{Field: "name", Desc: false}.OrderBy()

			Expect(ob).To(HaveLen(2))
			Expect(ob[1].Column).To(Equal("id"))
			Expect(ob[1].Desc).To(BeFalse())
		})

		It("does not duplicate the tiebreaker when sorting by id", func() {
			ob := datagrid.SortSpec{Field: "id", Desc: true}.OrderBy()

			Expect(ob).To(Equal([]datagrid.OrderBy{{Column: "id", Desc: true}}))
		})

		It("resolves unknown fields before lowering", func() {
			ob := datagrid.SortSpec{Field: "evil", Desc: false}.OrderBy()

			Expect(ob[0].Column).To(Equal("created_at"))
		})
	})

	Describe("String", func() {
		It("round-trips through ParseSort", func() {
			s := datagrid.ParseSort("email:asc")

			Expect(s.String()).To(Equal("email:asc"))
			Expect(datagrid.ParseSort(s.String())).To(Equal(s))
		})

		It("renders the resolved field", func() {
			s := datagrid.SortSpec{Field: "bogus", Desc: true}

			Expect(s.String()).To(Equal("createdAt:desc"))
		})
	})
})
