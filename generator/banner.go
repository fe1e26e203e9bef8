package generator

const RegenerateCommand = "openhab-codegen -write <config directory> <openhab directory>"

func banner(comment string) []string {
	return []string{
		"",
		comment + " ==========================================",
		comment + " THIS FILE IS AUTO GENERATED",
		comment + " Do not edit by hands",
		comment + " Use this command to regenerate:",
		comment + " " + RegenerateCommand,
		comment + " ==========================================",
		"",
		"",
	}
}
