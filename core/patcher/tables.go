package patcher

import (
	"fmt"

	"github.com/noesisnoema/pbxmend/core/pbxproj"
)

// Configuration describes one build-configuration block and the
// settings it must carry.
type Configuration struct {
	ID       string
	Name     string
	Required []pbxproj.Setting
}

func swiftVersionSetting(version string) pbxproj.Setting {
	return pbxproj.Setting{
		Key:  "SWIFT_VERSION",
		Line: fmt.Sprintf("\t\t\t\tSWIFT_VERSION = %s;\n", version),
	}
}

var generateInfoPlistSetting = pbxproj.Setting{
	Key:  "GENERATE_INFOPLIST_FILE",
	Line: "\t\t\t\tGENERATE_INFOPLIST_FILE = YES;\n",
}

// Configurations lists every build configuration in the project, with
// the settings each must contain. App targets additionally generate
// their Info.plist; the project-level and tool configurations do not.
func Configurations(swiftVersion string) []Configuration {
	swift := swiftVersionSetting(swiftVersion)
	appTarget := []pbxproj.Setting{swift, generateInfoPlistSetting}
	bare := []pbxproj.Setting{swift}

	return []Configuration{
		{ID: "F41FD0242E2A467000909132", Name: "Project Debug", Required: bare},
		{ID: "F41FD0252E2A467000909132", Name: "Project Release", Required: bare},
		{ID: "F41FD0272E2A467000909132", Name: "NoesisNoema Debug", Required: appTarget},
		{ID: "F41FD0282E2A467000909132", Name: "NoesisNoema Release", Required: appTarget},
		{ID: "F460884E2E2CD45000D4C555", Name: "LlamaBridgeTest Debug", Required: bare},
		{ID: "F460884F2E2CD45000D4C555", Name: "LlamaBridgeTest Release", Required: bare},
		{ID: "F4C581062E4F006800E64194", Name: "NoesisNoemaMobile Debug", Required: appTarget},
		{ID: "F4C581072E4F006800E64194", Name: "NoesisNoemaMobile Release", Required: appTarget},
	}
}

// FrameworkMoves maps the legacy top-level xcframework paths to their
// home under Frameworks/xcframeworks/.
func FrameworkMoves() []pbxproj.PathMove {
	return []pbxproj.PathMove{
		{Old: "Frameworks/llama_macos.xcframework", New: "Frameworks/xcframeworks/llama_macos.xcframework"},
		{Old: "Frameworks/llama_ios.xcframework", New: "Frameworks/xcframeworks/llama_ios.xcframework"},
	}
}

// StaleExceptionEntries are the membershipExceptions lines that became
// redundant once the xcframeworks moved. Matched against trimmed lines.
func StaleExceptionEntries() []string {
	return []string{
		"Frameworks/llama_macos.xcframework,",
		"Frameworks/llama_ios.xcframework,",
	}
}
