package colorfilter

// Pack returns the packed ARGB value of the given channels.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed ARGB value into its channels.
func Unpack(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

func pack_ints(a, r, g, b int) uint32 {
	return uint32(a&0xff)<<24 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff)
}

func unpack_ints(p uint32) (a, r, g, b int) {
	return int(p >> 24), int((p >> 16) & 0xff), int((p >> 8) & 0xff), int(p & 0xff)
}

// Luma8 is the 8-bit fixed point BT.601 style luma (77r + 150g + 29b) >> 8.
func Luma8(r, g, b int) int {
	return (77*r + 150*g + 29*b) >> 8
}
