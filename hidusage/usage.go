// Package hidusage maps HID usage pages and usage IDs to short and long display labels.
//
// Usages are carried by the keyboard firmware as a single 24-bit value: the usage page in
// bits 16-23 and the usage ID in bits 0-15. The keyboard page may be encoded as page 0.
package hidusage

// Usage pages covered by the label table.
const (
	PageGenericDesktop uint16 = 0x01
	PageKeyboard       uint16 = 0x07
	PageConsumer       uint16 = 0x0C
)

// Labels holds the display forms of a single usage.
type Labels struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

type usageKey struct {
	page uint16
	id   uint16
}

var table = func() map[usageKey]Labels {
	out := make(map[usageKey]Labels, len(desktopLabels)+len(keyboardLabels)+len(consumerLabels))
	for id, l := range desktopLabels {
		out[usageKey{PageGenericDesktop, id}] = l
	}
	for id, l := range keyboardLabels {
		out[usageKey{PageKeyboard, id}] = l
	}
	for id, l := range consumerLabels {
		out[usageKey{PageConsumer, id}] = l
	}
	return out
}()

// Lookup returns the labels known for the given page and id.
// Unknown pairs report false.
func Lookup(page, id uint16) (Labels, bool) {
	l, ok := table[usageKey{page, id}]
	return l, ok
}

// Split decomposes a 24-bit usage into its page and id. Bits above 23 are ignored.
// Page 0 is the firmware's compact form of the keyboard page and is returned as PageKeyboard.
func Split(usage uint32) (page, id uint16) {
	page = uint16((usage >> 16) & 0xFF)
	id = uint16(usage & 0xFFFF)
	if page == 0 {
		page = PageKeyboard
	}
	return page, id
}

// Usage packs a page and id into the 24-bit form understood by Split.
func Usage(page, id uint16) uint32 {
	return uint32(page&0xFF)<<16 | uint32(id)
}
