package value

// RoomType tags a price with a room category or a bed type slug.
type RoomType string

const (
	// RoomTypeRoom is the canonical base price of a section.
	RoomTypeRoom    RoomType = "room"
	RoomTypeSharing RoomType = "sharing"
	RoomTypeDouble  RoomType = "double"
	RoomTypeTriple  RoomType = "triple"
	RoomTypeQuad    RoomType = "quad"
	RoomTypeQuint   RoomType = "quint"
)

func (t RoomType) String() string {
	return string(t)
}

// Or returns t, or fallback when t is empty.
func (t RoomType) Or(fallback RoomType) RoomType {
	if t == "" {
		return fallback
	}

	return t
}
