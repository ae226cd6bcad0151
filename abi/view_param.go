package abi

// StringParam lowers a guest string into a GuestStringView.
//
// It has no FromABI, and StringViewABI has no FromHost: the host never
// originates a view into guest memory, so the reverse direction does not
// exist rather than failing at run time.
type StringParam struct{}

// IntoABI records the length and address of s. See NewGuestStringView.
func (StringParam) IntoABI(s string) GuestStringView { return NewGuestStringView(s) }

// BytesParam lowers a guest byte slice into a GuestMemoryView.
// Like StringParam it only goes guest to host.
type BytesParam struct{}

// IntoABI records the length and address of b. See NewGuestMemoryView.
func (BytesParam) IntoABI(b []byte) GuestMemoryView { return NewGuestMemoryView(b) }

// StringViewABI hands a received view to the host unchanged; the host then
// reconstructs it with AsString.
type StringViewABI struct{}

func (StringViewABI) IntoHost(v GuestStringView) GuestStringView { return v }

// MemoryViewABI hands a received view to the host unchanged; the host then
// reconstructs it with AsSlice.
type MemoryViewABI struct{}

func (MemoryViewABI) IntoHost(v GuestMemoryView) GuestMemoryView { return v }

var (
	// Str converts string parameters.
	Str = StringParam{}
	// Bytes converts []byte parameters.
	Bytes = BytesParam{}
	// StrABI lifts string views on the host.
	StrABI = StringViewABI{}
	// BytesABI lifts memory views on the host.
	BytesABI = MemoryViewABI{}
)

var (
	_ Lowerer[string, GuestStringView]             = Str
	_ Lowerer[[]byte, GuestMemoryView]             = Bytes
	_ HostLifter[GuestStringView, GuestStringView] = StrABI
	_ HostLifter[GuestMemoryView, GuestMemoryView] = BytesABI
)
