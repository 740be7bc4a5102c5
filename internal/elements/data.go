package elements

// records is the full reference data set, ordered by atomic number.
var records = []Record{
	{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1},
	{Symbol: "HE", Name: "Helium", AtomicNumber: 2},
	{Symbol: "LI", Name: "Lithium", AtomicNumber: 3},
	{Symbol: "BE", Name: "Beryllium", AtomicNumber: 4},
	{Symbol: "B", Name: "Boron", AtomicNumber: 5},
	{Symbol: "C", Name: "Carbon", AtomicNumber: 6},
	{Symbol: "N", Name: "Nitrogen", AtomicNumber: 7},
	{Symbol: "O", Name: "Oxygen", AtomicNumber: 8},
	{Symbol: "F", Name: "Fluorine", AtomicNumber: 9},
	{Symbol: "NE", Name: "Neon", AtomicNumber: 10},
	{Symbol: "NA", Name: "Sodium", AtomicNumber: 11},
	{Symbol: "MG", Name: "Magnesium", AtomicNumber: 12},
	{Symbol: "AL", Name: "Aluminum", AtomicNumber: 13},
	{Symbol: "SI", Name: "Silicon", AtomicNumber: 14},
	{Symbol: "P", Name: "Phosphorus", AtomicNumber: 15},
	{Symbol: "S", Name: "Sulfur", AtomicNumber: 16},
	{Symbol: "CL", Name: "Chlorine", AtomicNumber: 17},
	{Symbol: "AR", Name: "Argon", AtomicNumber: 18},
	{Symbol: "K", Name: "Potassium", AtomicNumber: 19},
	{Symbol: "CA", Name: "Calcium", AtomicNumber: 20},
	{Symbol: "SC", Name: "Scandium", AtomicNumber: 21},
	{Symbol: "TI", Name: "Titanium", AtomicNumber: 22},
	{Symbol: "V", Name: "Vanadium", AtomicNumber: 23},
	{Symbol: "CR", Name: "Chromium", AtomicNumber: 24},
	{Symbol: "MN", Name: "Manganese", AtomicNumber: 25},
	{Symbol: "FE", Name: "Iron", AtomicNumber: 26},
	{Symbol: "CO", Name: "Cobalt", AtomicNumber: 27},
	{Symbol: "NI", Name: "Nickel", AtomicNumber: 28},
	{Symbol: "CU", Name: "Copper", AtomicNumber: 29},
	{Symbol: "ZN", Name: "Zinc", AtomicNumber: 30},
	{Symbol: "GA", Name: "Gallium", AtomicNumber: 31},
	{Symbol: "GE", Name: "Germanium", AtomicNumber: 32},
	{Symbol: "AS", Name: "Arsenic", AtomicNumber: 33},
	{Symbol: "SE", Name: "Selenium", AtomicNumber: 34},
	{Symbol: "BR", Name: "Bromine", AtomicNumber: 35},
	{Symbol: "KR", Name: "Krypton", AtomicNumber: 36},
	{Symbol: "RB", Name: "Rubidium", AtomicNumber: 37},
	{Symbol: "SR", Name: "Strontium", AtomicNumber: 38},
	{Symbol: "Y", Name: "Yttrium", AtomicNumber: 39},
	{Symbol: "ZR", Name: "Zirconium", AtomicNumber: 40},
	{Symbol: "NB", Name: "Niobium", AtomicNumber: 41},
	{Symbol: "MO", Name: "Molybdenum", AtomicNumber: 42},
	{Symbol: "TC", Name: "Technetium", AtomicNumber: 43},
	{Symbol: "RU", Name: "Ruthenium", AtomicNumber: 44},
	{Symbol: "RH", Name: "Rhodium", AtomicNumber: 45},
	{Symbol: "PD", Name: "Palladium", AtomicNumber: 46},
	{Symbol: "AG", Name: "Silver", AtomicNumber: 47},
	{Symbol: "CD", Name: "Cadmium", AtomicNumber: 48},
	{Symbol: "IN", Name: "Indium", AtomicNumber: 49},
	{Symbol: "SN", Name: "Tin", AtomicNumber: 50},
	{Symbol: "SB", Name: "Antimony", AtomicNumber: 51},
	{Symbol: "TE", Name: "Tellurium", AtomicNumber: 52},
	{Symbol: "I", Name: "Iodine", AtomicNumber: 53},
	{Symbol: "XE", Name: "Xenon", AtomicNumber: 54},
	{Symbol: "CS", Name: "Cesium", AtomicNumber: 55},
	{Symbol: "BA", Name: "Barium", AtomicNumber: 56},
	{Symbol: "LA", Name: "Lanthanum", AtomicNumber: 57},
	{Symbol: "CE", Name: "Cerium", AtomicNumber: 58},
	{Symbol: "PR", Name: "Praseodymium", AtomicNumber: 59},
	{Symbol: "ND", Name: "Neodymium", AtomicNumber: 60},
	{Symbol: "PM", Name: "Promethium", AtomicNumber: 61},
	{Symbol: "SM", Name: "Samarium", AtomicNumber: 62},
	{Symbol: "EU", Name: "Europium", AtomicNumber: 63},
	{Symbol: "GD", Name: "Gadolinium", AtomicNumber: 64},
	{Symbol: "TB", Name: "Terbium", AtomicNumber: 65},
	{Symbol: "DY", Name: "Dysprosium", AtomicNumber: 66},
	{Symbol: "HO", Name: "Holmium", AtomicNumber: 67},
	{Symbol: "ER", Name: "Erbium", AtomicNumber: 68},
	{Symbol: "TM", Name: "Thulium", AtomicNumber: 69},
	{Symbol: "YB", Name: "Ytterbium", AtomicNumber: 70},
	{Symbol: "LU", Name: "Lutetium", AtomicNumber: 71},
	{Symbol: "HF", Name: "Hafnium", AtomicNumber: 72},
	{Symbol: "TA", Name: "Tantalum", AtomicNumber: 73},
	{Symbol: "W", Name: "Tungsten", AtomicNumber: 74},
	{Symbol: "RE", Name: "Rhenium", AtomicNumber: 75},
	{Symbol: "OS", Name: "Osmium", AtomicNumber: 76},
	{Symbol: "IR", Name: "Iridium", AtomicNumber: 77},
	{Symbol: "PT", Name: "Platinum", AtomicNumber: 78},
	{Symbol: "AU", Name: "Gold", AtomicNumber: 79},
	{Symbol: "OG", Name: "Oganesson", AtomicNumber: 118},
}
