package card

// Packed is the packed representation of a card: a single byte
// holding all four attributes, two bits each, with slot i stored
// in bits [2i, 2i+1]. A field value of 3 (0b11) encodes no
// attribute, so only 81 of the 256 byte values are valid
// encodings.
type Packed uint8

// Bit masks selecting the low and high bit of every 2-bit field.
const (
	mask0 Packed = 0x55 // 01010101
	mask1 Packed = 0xAA // 10101010
)

// Pack returns the packed encoding of c.
// Pack and Unpack are inverses over the valid domain.
func (c Card) Pack() Packed {
	var p Packed
	for i, a := range c.attrs {
		p |= Packed(a) << (2 * i)
	}
	return p
}

// Unpack returns the card encoded by p. It is only meaningful
// for values produced by Pack: a byte holding 0b11 in any field
// encodes no card.
func (p Packed) Unpack() Card {
	var c Card
	for i := range c.attrs {
		c.attrs[i] = uint8(p>>(2*i)) & 3
	}
	return c
}

// Completion returns the packed form of the card completing p
// and q into a set, equal to Completion(p.Unpack(), q.Unpack()).Pack()
// but computed with one bitwise formula instead of four modular
// subtractions. Per 2-bit field: where p and q agree, p&q keeps
// the shared value; where they differ, the completing value is
// the one held by neither, which is the field of p^q with its
// two bits swapped. No operation carries across field
// boundaries. The formula is verified against the scalar form
// over all 81x81 valid pairs in the tests; see TestPackedCompletion.
func (p Packed) Completion(q Packed) Packed {
	xor := p ^ q
	swapped := (xor&mask1)>>1 | (xor&mask0)<<1
	return p&q | ^(p|q)&swapped
}
