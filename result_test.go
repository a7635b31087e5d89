package datagrid_test

import (
	"time"

	"github.com/friendsofgo/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	datagrid "github.com/nrfta/go-datagrid"
)

type storedPerson struct {
	ID        int64
	Name      string
	Email     string
	Status    string
	CreatedAt time.Time
}

var _ = Describe("MapRows", func() {
	var source *datagrid.Result[storedPerson]

	BeforeEach(func() {
		total := int64(120)
		source = &datagrid.Result[storedPerson]{
			Rows: []storedPerson{
				{ID: 1, Name: "User 1", Email: "user1@example.com", Status: "ACTIVE"},
				{ID: 2, Name: "User 2", Email: "user2@example.com", Status: "INACTIVE"},
			},
			TotalCount:  &total,
			HasNextPage: true,
			Metadata:    datagrid.Metadata{Strategy: "offset", Page: 2},
		}
	})

	It("transforms every row and preserves pagination state", func() {
		out, err := datagrid.MapRows(source, func(p storedPerson) (datagrid.Row, error) {
			return datagrid.Row{
				ID:        p.ID,
				Name:      p.Name,
				Email:     p.Email,
				Status:    datagrid.Status(p.Status),
				CreatedAt: p.CreatedAt,
			}, nil
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(out.Rows).To(HaveLen(2))
		Expect(out.Rows[0].Name).To(Equal("User 1"))
		Expect(out.Rows[1].Status).To(Equal(datagrid.StatusInactive))
		Expect(*out.TotalCount).To(Equal(int64(120)))
		Expect(out.HasNextPage).To(BeTrue())
		Expect(out.Metadata.Page).To(Equal(2))
	})

	It("wraps a transform failure with the row index", func() {
		boom := errors.New("boom")

		_, err := datagrid.MapRows(source, func(p storedPerson) (datagrid.Row, error) {
			if p.ID == 2 {
				return datagrid.Row{}, boom
			}
			return datagrid.Row{ID: p.ID}, nil
		})

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("index 1"))
		Expect(errors.Cause(err)).To(Equal(boom))
	})

	It("handles an empty page", func() {
		out, err := datagrid.MapRows(&datagrid.Result[storedPerson]{}, func(p storedPerson) (datagrid.Row, error) {
			return datagrid.Row{}, nil
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(out.Rows).To(BeEmpty())
	})
})
