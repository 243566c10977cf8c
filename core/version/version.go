package version

// Version is the pbxmend release version.
const Version = "0.2.0"
