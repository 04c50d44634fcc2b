package theme

func defaultTypography() Typography {
	return Typography{
		Heading: `"Poppins", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
		Body:    `"Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
		Mono:    `"Fira Code", "Consolas", monospace`,
	}
}

func defaultSpace() Scale {
	return Scale{
		{"px", "1px"},
		{"0.5", "0.125rem"},
		{"1", "0.25rem"},
		{"1.5", "0.375rem"},
		{"2", "0.5rem"},
		{"2.5", "0.625rem"},
		{"3", "0.75rem"},
		{"3.5", "0.875rem"},
		{"4", "1rem"},
		{"5", "1.25rem"},
		{"6", "1.5rem"},
		{"7", "1.75rem"},
		{"8", "2rem"},
		{"9", "2.25rem"},
		{"10", "2.5rem"},
		{"12", "3rem"},
		{"14", "3.5rem"},
		{"16", "4rem"},
		{"20", "5rem"},
		{"24", "6rem"},
		{"28", "7rem"},
		{"32", "8rem"},
	}
}

func defaultRadii() Scale {
	return Scale{
		{"none", "0"},
		{"sm", "0.125rem"},
		{"base", "0.25rem"},
		{"md", "0.375rem"},
		{"lg", "0.5rem"},
		{"xl", "0.75rem"},
		{"2xl", "1rem"},
		{"3xl", "1.5rem"},
		{"full", "9999px"},
	}
}

func defaultFontSizes() Scale {
	return Scale{
		{"xs", "0.75rem"},
		{"sm", "0.875rem"},
		{"md", "1rem"},
		{"lg", "1.125rem"},
		{"xl", "1.25rem"},
		{"2xl", "1.5rem"},
	}
}

func defaultFontWeights() Scale {
	return Scale{
		{"normal", "400"},
		{"medium", "500"},
		{"semibold", "600"},
		{"bold", "700"},
	}
}

func defaultLineHeights() Scale {
	return Scale{
		{"none", "1"},
		{"shorter", "1.25"},
		{"short", "1.375"},
		{"base", "1.5"},
		{"tall", "1.625"},
		{"taller", "2"},
	}
}

func defaultShadows() Scale {
	return Scale{
		{"sm", "0 1px 2px 0 rgba(0, 0, 0, 0.05)"},
		{"base", "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)"},
		{"md", "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)"},
		{"lg", "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)"},
		{"xl", "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)"},
	}
}
