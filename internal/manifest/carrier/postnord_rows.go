package carrier

// Статические позиции стран в шаблоне PostNord (страна → строка).

var postnordMainEurope = map[string]int{
	"Austria": 8, "Belgium": 9, "Croatia": 10, "Czech Rep": 11,
	"Denmark": 12, "Estonia": 13, "Finland": 14, "France": 15,
	"Germany": 16, "Greece": 17, "Hungary": 18, "Iceland": 19,
	"Ireland": 20, "Italy": 21, "Latvia": 22, "Lithuania": 23,
	"Luxembourg": 24, "Netherlands": 25, "Norway": 26, "Poland": 27,
	"Portugal": 28, "Romania": 29, "Slovakia": 30, "Slovenia": 31,
	"Spain": 32, "Sweden": 33, "Switzerland": 34,
}

var postnordRestOfEurope = map[string]int{
	"Albania": 8, "Armenia": 9, "Azerbaijan": 10, "Belarus": 11,
	"Bosnia Her.": 12, "Bulgaria": 13, "Cyprus": 14, "Georgia": 15,
	"Kazakhstan": 16, "Kyrgyzstan": 17, "Macedonia": 18, "Malta": 19,
	"Moldova": 20, "Montenegro": 21, "Russia": 22, "Serbia": 23,
	"Turkey": 24, "Turkmenistan": 25, "Ukraine": 26, "Uzbekistan": 27,
}

var postnordROWPriorityLeft = map[string]int{
	"Canada": 4, "USA": 5,
	"Antigua & Barbuda": 10, "Argentina": 11, "Aruba": 12, "Bahamas": 13,
	"Barbados": 14, "Belize": 15, "Bermuda": 16, "Bolivia": 17,
	"Brazil": 18, "Cayman Islands": 19, "Chile": 20, "Colombia": 21,
	"Costa Rica": 22, "Cuba": 23, "Dominica": 24, "Dominican Republic": 25,
	"Ecuador": 26, "El Salvador": 27, "French Guiana": 28, "Grenada": 29,
	"Guadeloupe": 30, "Guatemala": 31, "Guyana": 32, "Honduras": 33,
	"Jamaica": 34, "Martinique": 35, "Mexico": 36, "Nicaragua": 37,
	"Panama": 38, "Paraguay": 39, "Peru": 40, "Puerto Rico": 41, "Reunion": 42,
}

var postnordROWPriorityRight = map[string]int{
	"St. Kitts & Nevis": 10, "St. Lucia": 11, "St. Vincent": 12,
	"Suriname": 13, "Trinidad & Tobago": 14, "Turks & Caicos": 15,
	"Uruguay": 16, "Venezuela": 17,
	"Bahrain": 22, "Egypt": 23, "Iraq": 24, "Israel": 25, "Jordan": 26,
	"Kuwait": 27, "Lebanon": 28, "Oman": 29, "Qatar": 30, "Saudi Arabia": 31, "UAE": 32,
	"Afghanistan": 37, "Bangladesh": 38, "India": 39, "Nepal": 40,
	"Pakistan": 41, "Sri Lanka": 42,
}

var postnordROWEconomyLeft = map[string]int{
	"Canada": 51, "USA": 52,
	"Antigua & Barbuda": 57, "Argentina": 58, "Aruba": 59, "Bahamas": 60,
	"Barbados": 61, "Belize": 62, "Bermuda": 63, "Bolivia": 64,
	"Brazil": 65, "Cayman Islands": 66, "Chile": 67, "Colombia": 68,
	"Costa Rica": 69, "Cuba": 70, "Dominica": 71, "Dominican Republic": 72,
	"Ecuador": 73, "El Salvador": 74, "French Guiana": 75, "Grenada": 76,
	"Guadeloupe": 77, "Guatemala": 78, "Guyana": 79, "Honduras": 80,
	"Jamaica": 81, "Martinique": 82, "Mexico": 83, "Nicaragua": 84,
	"Panama": 85, "Paraguay": 86, "Peru": 87, "Puerto Rico": 88, "Reunion": 89,
}

var postnordROWEconomyRight = map[string]int{
	"St. Kitts & Nevis": 57, "St. Lucia": 58, "St. Vincent": 59,
	"Suriname": 60, "Trinidad & Tobago": 61, "Turks & Caicos": 62,
	"Uruguay": 63, "Venezuela": 64,
	"Bahrain": 69, "Egypt": 70, "Iraq": 71, "Israel": 72, "Jordan": 73,
	"Kuwait": 74, "Lebanon": 75, "Oman": 76, "Qatar": 77, "Saudi Arabia": 78, "UAE": 79,
	"Afghanistan": 84, "Bangladesh": 85, "India": 86, "Nepal": 87,
	"Pakistan": 88, "Sri Lanka": 89,
}

var postnordROWContPriorityLeft = map[string]int{
	"Algeria": 4, "Angola": 5, "Benin": 6, "Botswana": 7,
	"Burkina Faso": 8, "Burundi": 9, "Cameroon": 10, "Central African Rep.": 11,
	"Chad": 12, "Congo, Dem. Rep.": 13, "Congo, Rep. of": 14, "Djibouti": 15,
	"Equatorial Guinea": 16, "Eritrea": 17, "Ethiopia": 18, "Gabon": 19,
	"Gambia": 20, "Ghana": 21, "Guinea": 22, "Ivory Coast": 23,
	"Kenya": 24, "Lesotho": 25, "Liberia": 26, "Madagascar": 27,
	"Malawi": 28, "Maldives": 29, "Mali": 30, "Mauritania": 31,
	"Mauritius": 32, "Morocco": 33, "Mozambique": 34, "Namibia": 35,
	"Niger": 36, "Nigeria": 37, "Rwanda": 38, "Senegal": 39,
	"Seychelles": 40, "Sierra Leone": 41, "South Africa": 42, "Sudan": 43,
	"Swaziland": 44, "Tanzania": 45, "Togo": 46,
}

var postnordROWContPriorityRight = map[string]int{
	"Tunisia": 5, "Uganda": 6, "Zambia": 12, "Zimbabwe": 13,
	"American Samoa": 18, "Australia": 19, "Brunei Darussalam": 20,
	"Cambodia": 21, "China": 22, "Fiji": 23, "French Polynesia": 24,
	"Hong Kong": 25, "Indonesia": 26, "Japan": 27, "Korea": 28,
	"Laos, Rep. of": 29, "Malaysia": 30, "Myanmar": 31, "New Caledonia": 32,
	"New Zealand": 33, "Papua New Guinea": 34, "Philippines": 35,
	"Samoa": 36, "Singapore": 37, "Taiwan": 38, "Thailand": 39,
	"Tonga": 40, "Vanuatu": 41, "Vietnam": 42,
}

var postnordROWContEconomyLeft = map[string]int{
	"Algeria": 52, "Angola": 53, "Benin": 54, "Botswana": 55,
	"Burkina Faso": 56, "Burundi": 57, "Cameroon": 58, "Central African Rep.": 59,
	"Chad": 60, "Congo, Dem. Rep.": 61, "Congo, Rep. of": 62, "Djibouti": 63,
	"Equatorial Guinea": 64, "Eritrea": 65, "Ethiopia": 66, "Gabon": 67,
	"Gambia": 68, "Ghana": 69, "Guinea": 70, "Ivory Coast": 71,
	"Kenya": 72, "Lesotho": 73, "Liberia": 74, "Madagascar": 75,
	"Malawi": 76, "Maldives": 77, "Mali": 78, "Mauritania": 79,
	"Mauritius": 80, "Morocco": 81, "Mozambique": 82, "Namibia": 83,
	"Niger": 84, "Nigeria": 85, "Rwanda": 86, "Senegal": 87,
	"Seychelles": 88, "Sierra Leone": 89, "South Africa": 90, "Sudan": 91,
	"Swaziland": 92, "Tanzania": 93, "Togo": 94,
}

// Economy-блок второго ROW-листа смещён относительно Priority.
var postnordROWContEconomyRight = map[string]int{
	"Tunisia": 53, "Uganda": 54, "Zambia": 58, "Zimbabwe": 59,
	"American Samoa": 62, "Australia": 63, "Brunei Darussalam": 64,
	"Cambodia": 65, "China": 66, "Fiji": 67, "French Polynesia": 68,
	"Hong Kong": 69, "Indonesia": 70, "Japan": 71, "Korea": 72,
	"Laos, Rep. of": 73, "Malaysia": 74, "Myanmar": 75, "New Caledonia": 76,
	"New Zealand": 77, "Papua New Guinea": 78, "Philippines": 79,
	"Samoa": 80, "Singapore": 81, "Taiwan": 82, "Thailand": 83,
	"Tonga": 84, "Vanuatu": 85, "Vietnam": 86,
}
