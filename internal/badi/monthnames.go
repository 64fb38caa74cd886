package badi

import "strconv"

// monthNames are the transliterated Arabic names of the Badí months.
// Index 0 is the intercalary period.
var monthNames = map[int]string{
	0:  "Ayyám-i-Há",
	1:  "Bahá",
	2:  "Jalál",
	3:  "Jamál",
	4:  "'Aẓamat",
	5:  "Núr",
	6:  "Raḥmat",
	7:  "Kalimát",
	8:  "Kamál",
	9:  "Asmá'",
	10: "'Izzat",
	11: "Mashíyyat",
	12: "'Ilm",
	13: "Qudrat",
	14: "Qawl",
	15: "Masá'il",
	16: "Sharaf",
	17: "Sulṭán",
	18: "Mulk",
	19: "'Alá'",
}

// MonthName returns the transliterated name of a Badí month, or the month
// number itself for values outside 0-19.
func MonthName(month int) string {
	if name, ok := monthNames[month]; ok {
		return name
	}
	return strconv.Itoa(month)
}
