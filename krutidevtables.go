package krutidev

// This file has been generated -- you probably should NOT EDIT IT !
//
// Mapping data for the Kruti Dev 010 family of legacy Devanagari
// fonts, generated from internal/generator/krutidev010.yaml.

// multiUnitMappings lists substitution rules whose patterns span two or
// more legacy units. Declaration order breaks ties between patterns of
// equal length.
var multiUnitMappings = []Mapping{
	{"[+k", "ख़"},
	{"[+", "ख़्"},
	{"x+", "ग़"},
	{"T+", "ज़्"},
	{"t+", "ज़"},
	{"M+", "ड़"},
	{"<+", "ढ़"},
	{"Q+", "फ़"},
	{";+", "य़"},
	{"j+", "ऱ"},
	{"u+", "ऩ"},
	{"¶+", "फ़्"},
	{"d+", "क़"},
	{"[k", "ख"},
	{"Xk", "ग"},
	{"Dk", "क"},
	{"?k", "घ"},
	{"Pk", "च"},
	{"Tk", "ज"},
	{"Fk", "थ"},
	{"/k", "ध"},
	{"'k", "श"},
	{"\"k", "ष"},
	{"Hk", "भ"},
	{".k", "ण"},
	{"vks", "ओ"},
	{"vkS", "औ"},
	{"vk", "आ"},
	{"bZ", "ई"},
	{",s", "ऐ"},
	{"{k", "क्ष"},
	{"=k", "त्र"},
	{"Ùk", "त्त"},
	{"nzZ", "र्द्र"},
	{")Z", "र्द्ध"},
	{"Nî", "छ्य"},
	{"Vî", "ट्य"},
	{"Bî", "ठ्य"},
	{"Mî", "ड्य"},
	{"<î", "ढ्य"},
	{"Vª", "ट्र"},
	{"Mª", "ड्र"},
	{"<ªª", "ढ्र"},
	{"Nª", "छ्र"},
	{"xz", "ग्र"},
	{"ºz", "ह्र"},
	{"èQs", "द्ध"},
	{"pkS", "चौ"},
	{"=kk", "त्रा"},
	{"f=k", "त्रि"},
}

// singleUnitMappings lists substitution rules for isolated legacy units.
var singleUnitMappings = []Mapping{
	{"É", "ा"},
	{"®", "र"},
	{"Ê", "ि"},
	{"à", "म"},
	{"º", "स"},
	{"ª", "य"},
	{"Ò", "ी"},
	{"ã", "े"},
	{"å", "न"},
	{"è", "ु"},
	{"¤", "ब"},
	{"´", "ृ"},
	{"Æ", "ं"},
	{"Ö", "ु"},
	{"¶", "फ्"},
	{"£", "भ"},
	{"Ç", "र्"},
	{"Ú", "ूं"},
	{"½", "ल"},
	{"\u00ad", "ष"},
	{"Ó", "ों"},
	{"â", "ू"},
	{"ó", "ृ"},
	{"Å", "ऊ"},
	{"§", "ू"},
	{"Ë", "ू"},
	{"Î", "ी"},
	{"Ã", "ई"},
	{"Ì", "ि"},
	{"ß", "्"},
	{"Í", "िं"},
	{"Ô", "ौ"},
	{"È", "इ"},
	{"°", "॰"},
	{"æ", "द्र"},
	{"ì", "ड्ड"},
	{"ô", "क्क"},
	{"é", "न्न"},
	{"ä", "क्त"},
	{"d", "क"},
	{"D", "क्"},
	{"[", "ख्"},
	{"x", "ग"},
	{"X", "ग्"},
	{"Ä", "घ"},
	{"?", "घ्"},
	{"³", "ङ"},
	{"p", "च"},
	{"P", "च्"},
	{"N", "छ"},
	{"t", "ज"},
	{"T", "ज्"},
	{">", "झ"},
	{"÷", "झ्"},
	{"¥", "ञ"},
	{"V", "ट"},
	{"B", "ठ"},
	{"M", "ड"},
	{"<", "ढ"},
	{".", "ण्"},
	{"r", "त"},
	{"R", "त्"},
	{"F", "थ्"},
	{")", "द्ध"},
	{"n", "द"},
	{"/", "ध्"},
	{"u", "न"},
	{"U", "न्"},
	{"i", "प"},
	{"I", "प्"},
	{"Q", "फ"},
	{"c", "ब"},
	{"C", "ब्"},
	{"H", "भ्"},
	{"e", "म"},
	{"E", "म्"},
	{";", "य"},
	{"¸", "य्"},
	{"j", "र"},
	{"y", "ल"},
	{"Y", "ल्"},
	{"G", "ळ"},
	{"o", "व"},
	{"O", "व्"},
	{"'", "श्"},
	{"\"", "ष्"},
	{"l", "स"},
	{"L", "स्"},
	{"g", "ह"},
	{"k", "ा"},
	{"s", "ी"},
	{"h", "ु"},
	{"w", "ू"},
	{"S", "े"},
	{"a", "ै"},
	{"¨", "ॅ"},
	{"‚", "ॉ"},
	{"^", "ँ"},
	{"~", "्"},
	{"Z", "़"},
	{"{", "क्ष्"},
	{"=", "त्र्"},
	{"«", "त्र्"},
	{"K", "ज्ञ"},
	{"J", "श्र"},
	{"Ø", "क्र"},
	{"Ý", "फ्र"},
	{"ç", "प्र"},
	{"Á", "प्र"},
	{"í", "द्द"},
	{"|", "द्य"},
	{"}", "द्व"},
	{"#", "रु"},
	{":", "रू"},
	{"–", "दृ"},
	{"—", "कृ"},
	{"v", "अ"},
	{"b", "इ"},
	{"m", "उ"},
	{",", "ए"},
	{"_", "ऋ"},
	{"0", "०"},
	{"1", "१"},
	{"2", "२"},
	{"3", "३"},
	{"4", "४"},
	{"5", "५"},
	{"6", "६"},
	{"7", "७"},
	{"8", "८"},
	{"9", "९"},
	{"ñ", "॰"},
	{"*", "।"},
}
