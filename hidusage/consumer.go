package hidusage

// Generic Desktop page system controls.
const (
	SystemPowerDown = 0x81
	SystemSleep     = 0x82
	SystemWakeUp    = 0x83
)

// Consumer page usages commonly bound on keyboards.
const (
	ConsumerBrightnessUp   = 0x6F
	ConsumerBrightnessDown = 0x70
	ConsumerFastForward    = 0xB3
	ConsumerRewind         = 0xB4
	ConsumerNextTrack      = 0xB5
	ConsumerPrevTrack      = 0xB6
	ConsumerStop           = 0xB7
	ConsumerEject          = 0xB8
	ConsumerPlayPause      = 0xCD
	ConsumerMute           = 0xE2
	ConsumerVolumeUp       = 0xE9
	ConsumerVolumeDown     = 0xEA
	ConsumerALEmail        = 0x18A
	ConsumerALCalculator   = 0x192
	ConsumerALFileBrowser  = 0x194
	ConsumerACSearch       = 0x221
	ConsumerACHome         = 0x223
	ConsumerACBack         = 0x224
	ConsumerACForward      = 0x225
	ConsumerACStop         = 0x226
	ConsumerACRefresh      = 0x227
	ConsumerACBookmarks    = 0x22A
)

var desktopLabels = map[uint16]Labels{
	SystemPowerDown: {"PwrDn", "System Power Down"},
	SystemSleep:     {"Sleep", "System Sleep"},
	SystemWakeUp:    {"Wake", "System Wake Up"},
}

var consumerLabels = map[uint16]Labels{
	ConsumerBrightnessUp:   {"Bri+", "Display Brightness Increment"},
	ConsumerBrightnessDown: {"Bri-", "Display Brightness Decrement"},
	ConsumerFastForward:    {"FF", "Fast Forward"},
	ConsumerRewind:         {"Rew", "Rewind"},
	ConsumerNextTrack:      {"Next", "Scan Next Track"},
	ConsumerPrevTrack:      {"Prev", "Scan Previous Track"},
	ConsumerStop:           {"Stop", "Stop"},
	ConsumerEject:          {"Eject", "Eject"},
	ConsumerPlayPause:      {"Play", "Play/Pause"},
	ConsumerMute:           {"Mute", "Mute"},
	ConsumerVolumeUp:       {"Vol+", "Volume Increment"},
	ConsumerVolumeDown:     {"Vol-", "Volume Decrement"},
	ConsumerALEmail:        {"Mail", "AL Email Reader"},
	ConsumerALCalculator:   {"Calc", "AL Calculator"},
	ConsumerALFileBrowser:  {"Files", "AL Local Machine Browser"},
	ConsumerACSearch:       {"Search", "AC Search"},
	ConsumerACHome:         {"Home", "AC Home"},
	ConsumerACBack:         {"Back", "AC Back"},
	ConsumerACForward:      {"Fwd", "AC Forward"},
	ConsumerACStop:         {"Stop", "AC Stop"},
	ConsumerACRefresh:      {"Rfsh", "AC Refresh"},
	ConsumerACBookmarks:    {"Bkmk", "AC Bookmarks"},
}
