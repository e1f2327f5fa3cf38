package example

// PageSize is the on-disk size of a Page.
const PageSize = 4096

// PageBody is what remains of a page after its header and footer.
const PageBody = PageSize - 10

// @wire
type Page struct {
	Header uint16
	Body   [PageBody]byte
	Footer uint64
}
