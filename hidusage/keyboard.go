package hidusage

// Modifier bitmasks, as found in the high byte of a packed binding parameter.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// HID Usage IDs for keyboard keys (USB HID Keyboard/Keypad usage page)
const (
	// Letters A-Z
	KeyA = 0x04
	KeyB = 0x05
	KeyC = 0x06
	KeyD = 0x07
	KeyE = 0x08
	KeyF = 0x09
	KeyG = 0x0A
	KeyH = 0x0B
	KeyI = 0x0C
	KeyJ = 0x0D
	KeyK = 0x0E
	KeyL = 0x0F
	KeyM = 0x10
	KeyN = 0x11
	KeyO = 0x12
	KeyP = 0x13
	KeyQ = 0x14
	KeyR = 0x15
	KeyS = 0x16
	KeyT = 0x17
	KeyU = 0x18
	KeyV = 0x19
	KeyW = 0x1A
	KeyX = 0x1B
	KeyY = 0x1C
	KeyZ = 0x1D

	// Numbers 1-0 (top row)
	Key1 = 0x1E
	Key2 = 0x1F
	Key3 = 0x20
	Key4 = 0x21
	Key5 = 0x22
	Key6 = 0x23
	Key7 = 0x24
	Key8 = 0x25
	Key9 = 0x26
	Key0 = 0x27

	KeyEnter      = 0x28
	KeyEscape     = 0x29
	KeyBackspace  = 0x2A
	KeyTab        = 0x2B
	KeySpace      = 0x2C
	KeyMinus      = 0x2D // - and _
	KeyEqual      = 0x2E // = and +
	KeyLeftBrace  = 0x2F // [ and {
	KeyRightBrace = 0x30 // ] and }
	KeyBackslash  = 0x31 // \ and |
	KeyNonUSHash  = 0x32 // Non-US # and ~
	KeySemicolon  = 0x33 // ; and :
	KeyApostrophe = 0x34 // ' and "
	KeyGrave      = 0x35 // ` and ~
	KeyComma      = 0x36 // , and <
	KeyPeriod     = 0x37 // . and >
	KeySlash      = 0x38 // / and ?
	KeyCapsLock   = 0x39

	KeyF1  = 0x3A
	KeyF2  = 0x3B
	KeyF3  = 0x3C
	KeyF4  = 0x3D
	KeyF5  = 0x3E
	KeyF6  = 0x3F
	KeyF7  = 0x40
	KeyF8  = 0x41
	KeyF9  = 0x42
	KeyF10 = 0x43
	KeyF11 = 0x44
	KeyF12 = 0x45

	KeyPrintScreen = 0x46
	KeyScrollLock  = 0x47
	KeyPause       = 0x48
	KeyInsert      = 0x49
	KeyHome        = 0x4A
	KeyPageUp      = 0x4B
	KeyDelete      = 0x4C
	KeyEnd         = 0x4D
	KeyPageDown    = 0x4E

	KeyRight = 0x4F
	KeyLeft  = 0x50
	KeyDown  = 0x51
	KeyUp    = 0x52

	KeyNumLock    = 0x53
	KeyKpSlash    = 0x54
	KeyKpAsterisk = 0x55
	KeyKpMinus    = 0x56
	KeyKpPlus     = 0x57
	KeyKpEnter    = 0x58
	KeyKp1        = 0x59
	KeyKp2        = 0x5A
	KeyKp3        = 0x5B
	KeyKp4        = 0x5C
	KeyKp5        = 0x5D
	KeyKp6        = 0x5E
	KeyKp7        = 0x5F
	KeyKp8        = 0x60
	KeyKp9        = 0x61
	KeyKp0        = 0x62
	KeyKpDot      = 0x63

	KeyNonUSBackslash = 0x64 // Non-US \ and |
	KeyApplication    = 0x65 // Application (Windows Menu key)
	KeyPower          = 0x66
	KeyKpEqual        = 0x67

	KeyF13 = 0x68
	KeyF14 = 0x69
	KeyF15 = 0x6A
	KeyF16 = 0x6B
	KeyF17 = 0x6C
	KeyF18 = 0x6D
	KeyF19 = 0x6E
	KeyF20 = 0x6F
	KeyF21 = 0x70
	KeyF22 = 0x71
	KeyF23 = 0x72
	KeyF24 = 0x73

	KeyExecute    = 0x74
	KeyHelp       = 0x75
	KeyMenu       = 0x76
	KeySelect     = 0x77
	KeyStop       = 0x78
	KeyAgain      = 0x79 // Redo
	KeyUndo       = 0x7A
	KeyCut        = 0x7B
	KeyCopy       = 0x7C
	KeyPaste      = 0x7D
	KeyFind       = 0x7E
	KeyMute       = 0x7F
	KeyVolumeUp   = 0x80
	KeyVolumeDown = 0x81

	KeyKpComma = 0x85
	KeyIntl1   = 0x87 // Ro
	KeyIntl2   = 0x88 // Katakana/Hiragana
	KeyIntl3   = 0x89 // Yen
	KeyIntl4   = 0x8A // Henkan
	KeyIntl5   = 0x8B // Muhenkan
	KeyLang1   = 0x90 // Hangul/English
	KeyLang2   = 0x91 // Hanja

	KeyLeftCtrl   = 0xE0
	KeyLeftShift  = 0xE1
	KeyLeftAlt    = 0xE2
	KeyLeftGUI    = 0xE3
	KeyRightCtrl  = 0xE4
	KeyRightShift = 0xE5
	KeyRightAlt   = 0xE6
	KeyRightGUI   = 0xE7
)

var keyboardLabels = map[uint16]Labels{
	KeyA: {"A", "A"}, KeyB: {"B", "B"}, KeyC: {"C", "C"}, KeyD: {"D", "D"}, KeyE: {"E", "E"},
	KeyF: {"F", "F"}, KeyG: {"G", "G"}, KeyH: {"H", "H"}, KeyI: {"I", "I"}, KeyJ: {"J", "J"},
	KeyK: {"K", "K"}, KeyL: {"L", "L"}, KeyM: {"M", "M"}, KeyN: {"N", "N"}, KeyO: {"O", "O"},
	KeyP: {"P", "P"}, KeyQ: {"Q", "Q"}, KeyR: {"R", "R"}, KeyS: {"S", "S"}, KeyT: {"T", "T"},
	KeyU: {"U", "U"}, KeyV: {"V", "V"}, KeyW: {"W", "W"}, KeyX: {"X", "X"}, KeyY: {"Y", "Y"},
	KeyZ: {"Z", "Z"},

	Key1: {"1", "1 and !"}, Key2: {"2", "2 and @"}, Key3: {"3", "3 and #"},
	Key4: {"4", "4 and $"}, Key5: {"5", "5 and %"}, Key6: {"6", "6 and ^"},
	Key7: {"7", "7 and &"}, Key8: {"8", "8 and *"}, Key9: {"9", "9 and ("},
	Key0: {"0", "0 and )"},

	KeyEnter:      {"Ret", "Return Enter"},
	KeyEscape:     {"Esc", "Escape"},
	KeyBackspace:  {"BkSp", "Backspace"},
	KeyTab:        {"Tab", "Tab"},
	KeySpace:      {"Space", "Spacebar"},
	KeyMinus:      {"-", "- and _"},
	KeyEqual:      {"=", "= and +"},
	KeyLeftBrace:  {"[", "[ and {"},
	KeyRightBrace: {"]", "] and }"},
	KeyBackslash:  {"\\", "\\ and |"},
	KeyNonUSHash:  {"#", "Non-US # and ~"},
	KeySemicolon:  {";", "; and :"},
	KeyApostrophe: {"'", "' and \""},
	KeyGrave:      {"`", "` and ~"},
	KeyComma:      {",", ", and <"},
	KeyPeriod:     {".", ". and >"},
	KeySlash:      {"/", "/ and ?"},
	KeyCapsLock:   {"Caps", "Caps Lock"},

	KeyF1: {"F1", "F1"}, KeyF2: {"F2", "F2"}, KeyF3: {"F3", "F3"}, KeyF4: {"F4", "F4"},
	KeyF5: {"F5", "F5"}, KeyF6: {"F6", "F6"}, KeyF7: {"F7", "F7"}, KeyF8: {"F8", "F8"},
	KeyF9: {"F9", "F9"}, KeyF10: {"F10", "F10"}, KeyF11: {"F11", "F11"}, KeyF12: {"F12", "F12"},

	KeyPrintScreen: {"PrSc", "Print Screen"},
	KeyScrollLock:  {"ScLk", "Scroll Lock"},
	KeyPause:       {"Pause", "Pause"},
	KeyInsert:      {"Ins", "Insert"},
	KeyHome:        {"Home", "Home"},
	KeyPageUp:      {"PgUp", "Page Up"},
	KeyDelete:      {"Del", "Delete Forward"},
	KeyEnd:         {"End", "End"},
	KeyPageDown:    {"PgDn", "Page Down"},

	KeyRight: {"→", "Right Arrow"},
	KeyLeft:  {"←", "Left Arrow"},
	KeyDown:  {"↓", "Down Arrow"},
	KeyUp:    {"↑", "Up Arrow"},

	KeyNumLock:    {"NumLk", "Keypad Num Lock and Clear"},
	KeyKpSlash:    {"KP /", "Keypad /"},
	KeyKpAsterisk: {"KP *", "Keypad *"},
	KeyKpMinus:    {"KP -", "Keypad -"},
	KeyKpPlus:     {"KP +", "Keypad +"},
	KeyKpEnter:    {"KP Ret", "Keypad Enter"},
	KeyKp1:        {"KP 1", "Keypad 1 and End"},
	KeyKp2:        {"KP 2", "Keypad 2 and Down Arrow"},
	KeyKp3:        {"KP 3", "Keypad 3 and Page Down"},
	KeyKp4:        {"KP 4", "Keypad 4 and Left Arrow"},
	KeyKp5:        {"KP 5", "Keypad 5"},
	KeyKp6:        {"KP 6", "Keypad 6 and Right Arrow"},
	KeyKp7:        {"KP 7", "Keypad 7 and Home"},
	KeyKp8:        {"KP 8", "Keypad 8 and Up Arrow"},
	KeyKp9:        {"KP 9", "Keypad 9 and Page Up"},
	KeyKp0:        {"KP 0", "Keypad 0 and Insert"},
	KeyKpDot:      {"KP .", "Keypad . and Delete"},

	KeyNonUSBackslash: {"\\", "Non-US \\ and |"},
	KeyApplication:    {"Menu", "Application"},
	KeyPower:          {"Pwr", "Power"},
	KeyKpEqual:        {"KP =", "Keypad ="},

	KeyF13: {"F13", "F13"}, KeyF14: {"F14", "F14"}, KeyF15: {"F15", "F15"},
	KeyF16: {"F16", "F16"}, KeyF17: {"F17", "F17"}, KeyF18: {"F18", "F18"},
	KeyF19: {"F19", "F19"}, KeyF20: {"F20", "F20"}, KeyF21: {"F21", "F21"},
	KeyF22: {"F22", "F22"}, KeyF23: {"F23", "F23"}, KeyF24: {"F24", "F24"},

	KeyExecute:    {"Exec", "Execute"},
	KeyHelp:       {"Help", "Help"},
	KeyMenu:       {"Menu", "Menu"},
	KeySelect:     {"Sel", "Select"},
	KeyStop:       {"Stop", "Stop"},
	KeyAgain:      {"Again", "Again"},
	KeyUndo:       {"Undo", "Undo"},
	KeyCut:        {"Cut", "Cut"},
	KeyCopy:       {"Copy", "Copy"},
	KeyPaste:      {"Paste", "Paste"},
	KeyFind:       {"Find", "Find"},
	KeyMute:       {"Mute", "Mute"},
	KeyVolumeUp:   {"Vol+", "Volume Up"},
	KeyVolumeDown: {"Vol-", "Volume Down"},

	KeyKpComma: {"KP ,", "Keypad Comma"},
	KeyIntl1:   {"Ro", "International1"},
	KeyIntl2:   {"Kana", "International2"},
	KeyIntl3:   {"¥", "International3"},
	KeyIntl4:   {"Henk", "International4"},
	KeyIntl5:   {"Mhen", "International5"},
	KeyLang1:   {"Lang1", "LANG1"},
	KeyLang2:   {"Lang2", "LANG2"},

	KeyLeftCtrl:   {"LCtrl", "Left Control"},
	KeyLeftShift:  {"LShft", "Left Shift"},
	KeyLeftAlt:    {"LAlt", "Left Alt"},
	KeyLeftGUI:    {"LGUI", "Left GUI"},
	KeyRightCtrl:  {"RCtrl", "Right Control"},
	KeyRightShift: {"RShft", "Right Shift"},
	KeyRightAlt:   {"RAlt", "Right Alt"},
	KeyRightGUI:   {"RGUI", "Right GUI"},
}
