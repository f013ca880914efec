package errmsg

func ShouldHaveExtension(path, actualExtension, expectedExtension string) Factory {
	if actualExtension == "" {
		return New("\nExpecting\n  <%s>\nto have extension:\n  <%s>\nbut had no extension.",
			Raw(path), expectedExtension)
	}
	return New("\nExpecting\n  <%s>\nto have extension:\n  <%s>\nbut had:\n  <%s>.",
		Raw(path), expectedExtension, actualExtension)
}

func ShouldHaveNoExtension(path, extension string) Factory {
	return New("\nExpecting\n  <%s>\nnot to have an extension but had:\n  <%s>", Raw(path), extension)
}

func ShouldExist(path string) Factory {
	return New("\nExpecting file:\n  <%s>\nto exist.", Raw(path))
}

func ShouldBeDirectory(path string) Factory {
	return New("\nExpecting path:\n  <%s>\nto be a directory.", Raw(path))
}

func ShouldBeFile(path string) Factory {
	return New("\nExpecting path:\n  <%s>\nto be a regular file.", Raw(path))
}

func ShouldHaveContent(path, expected, actual string) Factory {
	return New("\nExpecting file:\n  <%s>\nto have content:\n  <%s>\nbut had:\n  <%s>", Raw(path), expected, actual)
}
