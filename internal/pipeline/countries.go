package pipeline

import (
	"strings"

	"fugitives/internal/util"
)

type birthPlace struct {
	country string
	code    string
}

// Birth-place strings as they appear on profile pages, mapped to the
// country and ISO 3166-1 alpha-3 code. The table is keyed on the exact
// source text so additions are a one-line change.
var birthPlaceTable = map[string]birthPlace{
	"Los Angeles, California":      {"United States", "USA"},
	"Pasadena, California":         {"United States", "USA"},
	"Arcadia, California":          {"United States", "USA"},
	"Sacramento, California":       {"United States", "USA"},
	"San Francisco, California":    {"United States", "USA"},
	"Fresno, California":           {"United States", "USA"},
	"California":                   {"United States", "USA"},
	"Brooklyn, New York":           {"United States", "USA"},
	"New York City, New York":      {"United States", "USA"},
	"New York":                     {"United States", "USA"},
	"El Paso, Texas":               {"United States", "USA"},
	"Memphis, Tennessee":           {"United States", "USA"},
	"Mobile, Alabama":              {"United States", "USA"},
	"Selma, Alabama":               {"United States", "USA"},
	"Alabama":                      {"United States", "USA"},
	"Springfield, Illinois":        {"United States", "USA"},
	"Olney, Illinois":              {"United States", "USA"},
	"Illinois":                     {"United States", "USA"},
	"Detroit, Michigan":            {"United States", "USA"},
	"Michigan, USA":                {"United States", "USA"},
	"Miami, Florida":               {"United States", "USA"},
	"Florida":                      {"United States", "USA"},
	"New Jersey":                   {"United States", "USA"},
	"Virginia":                     {"United States", "USA"},
	"Oregon":                       {"United States", "USA"},
	"Pennsylvania":                 {"United States", "USA"},
	"North Dakota":                 {"United States", "USA"},
	"Louisiana":                    {"United States", "USA"},
	"Massachusetts":                {"United States", "USA"},
	"Hawaii":                       {"United States", "USA"},
	"Idaho":                        {"United States", "USA"},
	"Ohio":                         {"United States", "USA"},
	"Wadesboro, North Carolina":    {"United States", "USA"},
	"Washington, DC":               {"United States", "USA"},
	"Wayne, Pennsylvania":          {"United States", "USA"},
	"Hunan Province, China":        {"China", "CHN"},
	"Liaoning, China":              {"China", "CHN"},
	"Hangzhou, Zhejiang Province, China": {"China", "CHN"},
	"Heilongjiang, China":          {"China", "CHN"},
	"Wusu, Xinjiang, China":        {"China", "CHN"},
	"Anhui, China":                 {"China", "CHN"},
	"Tacheng, Xinjiang, China or Urumqi, Xinjiang, China": {"China", "CHN"},
	"Shaanxi, China":               {"China", "CHN"},
	"Shandong, China":              {"China", "CHN"},
	"Shanghai, China":              {"China", "CHN"},
	"Weifang, Shandong, China":     {"China", "CHN"},
	"Zhejiang, China":              {"China", "CHN"},
	"China":                        {"China", "CHN"},
	"People's Republic of China":   {"China", "CHN"},
	"Chelyabinskaya Oblast, Russia": {"Russia", "RUS"},
	"Tver, Russia":                 {"Russia", "RUS"},
	"Stavropol, Russia":            {"Russia", "RUS"},
	"Novocherkask, Russia":         {"Russia", "RUS"},
	"Volzhskiy, Volgogradskaya Oblast, Russia": {"Russia", "RUS"},
	"Saint Petersburg, Russia":     {"Russia", "RUS"},
	"Murmanskaya Oblast, Russia":   {"Russia", "RUS"},
	"Sosnovka, Russia":             {"Russia", "RUS"},
	"Moscow, Russia":               {"Russia", "RUS"},
	"Village of Fenino, Serpukhovskoy District, Moscow Oblast, Russia": {"Russia", "RUS"},
	"Totma, Vologda Oblast, Russia": {"Russia", "RUS"},
	"Tymovskoye, Russia":           {"Russia", "RUS"},
	"Leningrad, Russia":            {"Russia", "RUS"},
	"Kaluga, Russia":               {"Russia", "RUS"},
	"City of Syktyvkar, Russia":    {"Russia", "RUS"},
	"Ramenskoye, Russia":           {"Russia", "RUS"},
	"Grozny, Chechnya, Russia":     {"Russia", "RUS"},
	"Rostov-On-Don, Russia":        {"Russia", "RUS"},
	"Khaborovsk, Russia":           {"Russia", "RUS"},
	"Obninsk, Kaluga Oblast, Russia": {"Russia", "RUS"},
	"Vologda, Russia":              {"Russia", "RUS"},
	"Bratsk, Irkutsk Oblast, Russia": {"Russia", "RUS"},
	"Kursk, Russia":                {"Russia", "RUS"},
	"Yoshkar-Ola, Russia":          {"Russia", "RUS"},
	"Stavropolskiy Kraya, Russia":  {"Russia", "RUS"},
	"Bologoe-4, Kalininskiy Oblast, Russia": {"Russia", "RUS"},
	"Russia":                       {"Russia", "RUS"},
	"Russian Federation":           {"Russia", "RUS"},
	"Zabol, Iran":                  {"Iran", "IRN"},
	"Tehran, Iran":                 {"Iran", "IRN"},
	"Tabriz, Iran":                 {"Iran", "IRN"},
	"Zanjan, Iran":                 {"Iran", "IRN"},
	"Urmia, Iran":                  {"Iran", "IRN"},
	"Yazd Province, Iran":          {"Iran", "IRN"},
	"Sabzevar, Iran":               {"Iran", "IRN"},
	"Tehran Province, Iran":        {"Iran", "IRN"},
	"Karaj, Iran":                  {"Iran", "IRN"},
	"Mianeh, Iran":                 {"Iran", "IRN"},
	"Naghadeh, Iran":               {"Iran", "IRN"},
	"Ilam, Iran":                   {"Iran", "IRN"},
	"Mashhad, Iran":                {"Iran", "IRN"},
	"Ardabil, Iran":                {"Iran", "IRN"},
	"Iran":                         {"Iran", "IRN"},
	"Nayarit, Mexico":              {"Mexico", "MEX"},
	"Sinaloa, Mexico":              {"Mexico", "MEX"},
	"Baja California, Mexico":      {"Mexico", "MEX"},
	"Jalisco, Mexico":              {"Mexico", "MEX"},
	"Veracruz, Mexico":             {"Mexico", "MEX"},
	"Jerez, Zacatecas, Mexico":     {"Mexico", "MEX"},
	"Chuicopa, Sinaloa, Mexico":    {"Mexico", "MEX"},
	"Mezquital del Oro, Zacatecas, Mexico": {"Mexico", "MEX"},
	"Zacatecas, Mexico":            {"Mexico", "MEX"},
	"Colima, Mexico":               {"Mexico", "MEX"},
	"Mexico City, Mexico":          {"Mexico", "MEX"},
	"Hidalgo, Mexico":              {"Mexico", "MEX"},
	"Durango, Mexico":              {"Mexico", "MEX"},
	"Mexico":                       {"Mexico", "MEX"},
	"Jucuaran, Usulutan, El Salvador": {"El Salvador", "SLV"},
	"San Francisco Menendez, Ahuachapan, El Salvador": {"El Salvador", "SLV"},
	"San Salvador, San Salvador, El Salvador":         {"El Salvador", "SLV"},
	"Ozatlan, Usulutan, El Salvador":                  {"El Salvador", "SLV"},
	"Ahuachapan, Ahuachapan, El Salvador":             {"El Salvador", "SLV"},
	"Tejutla, Chalatenango, El Salvador":              {"El Salvador", "SLV"},
	"Cuscatancingo, San Salvador, El Salvador":        {"El Salvador", "SLV"},
	"Usulutan, Usulutan, El Salvador":                 {"El Salvador", "SLV"},
	"El Salvador":                  {"El Salvador", "SLV"},
	"Pyongyang, North Korea":       {"North Korea", "PRK"},
	"Democratic People's Republic of Korea (North Korea)": {"North Korea", "PRK"},
	"Kryvyi Rih, Dnipropetrovsk Oblast, Ukraine": {"Ukraine", "UKR"},
	"Kyiv, Ukraine":                {"Ukraine", "UKR"},
	"Kiev, Ukraine":                {"Ukraine", "UKR"},
	"Boryspil, Kyiv Oblast, Ukraine": {"Ukraine", "UKR"},
	"Ukraine":                      {"Ukraine", "UKR"},
	"Homs, Syria":                  {"Syria", "SYR"},
	"Damascus, Syria":              {"Syria", "SYR"},
	"Allepo, Syria":                {"Syria", "SYR"},
	"Syria":                        {"Syria", "SYR"},
	"San Juan, Puerto Rico":        {"Puerto Rico", "PRI"},
	"Lajas, Puerto Rico":           {"Puerto Rico", "PRI"},
	"Aguada, Puerto Rico":          {"Puerto Rico", "PRI"},
	"Pakistan":                     {"Pakistan", "PAK"},
	"Pranpura, Haryana, India":     {"India", "IND"},
	"Hyderabad, Pakistan":          {"Pakistan", "PAK"},
	"Karachi, Pakistan":            {"Pakistan", "PAK"},
	"India":                        {"India", "IND"},
	"Honduras":                     {"Honduras", "HND"},
	"Atlantida, Honduras":          {"Honduras", "HND"},
	"Copan, Honduras":              {"Honduras", "HND"},
	"Cambodia":                     {"Cambodia", "KHM"},
	"Uzbekistan":                   {"Uzbekistan", "UZB"},
	"Toy Teipa, Uzbekistan":        {"Uzbekistan", "UZB"},
	"Haiti":                        {"Haiti", "HTI"},
	"Nigeria":                      {"Nigeria", "NGA"},
	"Minsk, Belarus":               {"Belarus", "BLR"},
	"Jamaica":                      {"Jamaica", "JAM"},
	"Santiago, Dominican Republic": {"Dominican Republic", "DOM"},
	"Dominican Republic":           {"Dominican Republic", "DOM"},
	"La Calera, Chile":             {"Chile", "CHL"},
	"LaGuaira, Venezuela":          {"Venezuela", "VEN"},
	"Venezuela":                    {"Venezuela", "VEN"},
	"Bangladesh":                   {"Bangladesh", "BGD"},
	"Riga, Latvia":                 {"Latvia", "LVA"},
	"Vietnam":                      {"Vietnam", "VNM"},
	"Republic of Vietnam":          {"Vietnam", "VNM"},
	"Mong Cai, Quang Ninh Province, North Vietnam": {"Vietnam", "VNM"},
	"Quang Binh Province, Vietnam": {"Vietnam", "VNM"},
	"Sweden":                       {"Sweden", "SWE"},
	"Canada":                       {"Canada", "CAN"},
	"Bel Ombre, Mahe Island, Seychelles": {"Seychelles", "SYC"},
	"Spain":                        {"Spain", "ESP"},
	"Cuba":                         {"Cuba", "CUB"},
	"Turkey":                       {"Turkey", "TUR"},
	"Armenia":                      {"Armenia", "ARM"},
	"Ghana":                        {"Ghana", "GHA"},
	"Ecuador":                      {"Ecuador", "ECU"},
	"Guayaquil, Ecuador":           {"Ecuador", "ECU"},
	"Brazil":                       {"Brazil", "BRA"},
	"Laos":                         {"Laos", "LAO"},
	"Philippines":                  {"Philippines", "PHL"},
	"Ilocos Norte, Philippines":    {"Philippines", "PHL"},
	"Germany":                      {"Germany", "DEU"},
	"Sydney, Australia":            {"Australia", "AUS"},
	"Sumqayit, Azerbaijan":         {"Azerbaijan", "AZE"},
	"Muscat, Oman":                 {"Oman", "OMN"},
	"United Kingdom":               {"United Kingdom", "GBR"},
	"Batroun, Lebanon":             {"Lebanon", "LBN"},
	"Guatemala":                    {"Guatemala", "GTM"},
}

// BirthCountry resolves a birth-place string to its country and ISO code.
// Empty or "Unknown" input yields nothing; an unmapped place keeps the raw
// text as the country with no code, so the value is never silently lost.
func BirthCountry(place string) (country, code *string) {
	s := strings.TrimSpace(place)
	if s == "" || s == "Unknown" {
		return nil, nil
	}

	if entry, ok := birthPlaceTable[s]; ok {
		return util.StringPtr(entry.country), util.StringPtr(entry.code)
	}
	return util.StringPtr(s), nil
}
