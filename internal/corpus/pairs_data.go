package corpus

// Ground-truth pair banks. Difficulty buckets: "easy" pairs have large value
// gaps, "medium" pairs need domain knowledge, "hard" pairs are close together
// or commonly confused. A few hard pairs are literal ties; see QuestionPair.Tie.

var locationPairs = []LocationPair{
	{X: "Paris", Y: "Cairo", LatX: 48.9, LatY: 30.0, Difficulty: "easy"},
	{X: "Tokyo", Y: "Sydney", LatX: 35.7, LatY: -33.9, Difficulty: "easy"},
	{X: "London", Y: "Cape Town", LatX: 51.5, LatY: -33.9, Difficulty: "easy"},
	{X: "Stockholm", Y: "Rome", LatX: 59.3, LatY: 41.9, Difficulty: "easy"},
	{X: "Moscow", Y: "Dubai", LatX: 55.8, LatY: 25.3, Difficulty: "easy"},
	{X: "New York", Y: "Mexico City", LatX: 40.7, LatY: 19.4, Difficulty: "medium"},
	{X: "Beijing", Y: "Bangkok", LatX: 39.9, LatY: 13.8, Difficulty: "medium"},
	{X: "Los Angeles", Y: "Lima", LatX: 34.1, LatY: -12.0, Difficulty: "medium"},
	{X: "Mumbai", Y: "Singapore", LatX: 19.1, LatY: 1.3, Difficulty: "medium"},
	{X: "Berlin", Y: "Madrid", LatX: 52.5, LatY: 40.4, Difficulty: "medium"},
	{X: "Seattle", Y: "Portland", LatX: 47.6, LatY: 45.5, Difficulty: "hard"},
	{X: "Milan", Y: "Rome", LatX: 45.5, LatY: 41.9, Difficulty: "hard"},
	{X: "Boston", Y: "Washington DC", LatX: 42.4, LatY: 38.9, Difficulty: "hard"},
	{X: "Munich", Y: "Vienna", LatX: 48.1, LatY: 48.2, Difficulty: "hard"},
	{X: "Toronto", Y: "Detroit", LatX: 43.7, LatY: 42.3, Difficulty: "hard"},
	{X: "Helsinki", Y: "Athens", LatX: 60.2, LatY: 37.9, Difficulty: "easy"},
	{X: "Oslo", Y: "Lisbon", LatX: 59.9, LatY: 38.7, Difficulty: "easy"},
	{X: "Vancouver", Y: "Buenos Aires", LatX: 49.3, LatY: -34.6, Difficulty: "easy"},
	{X: "Reykjavik", Y: "Nairobi", LatX: 64.1, LatY: -1.3, Difficulty: "easy"},
	{X: "Edinburgh", Y: "Johannesburg", LatX: 55.9, LatY: -26.2, Difficulty: "easy"},
	{X: "Copenhagen", Y: "Tel Aviv", LatX: 55.7, LatY: 32.1, Difficulty: "easy"},
	{X: "Amsterdam", Y: "Marrakech", LatX: 52.4, LatY: 31.6, Difficulty: "easy"},
	{X: "Dublin", Y: "Lagos", LatX: 53.3, LatY: 6.5, Difficulty: "easy"},
	{X: "Warsaw", Y: "Addis Ababa", LatX: 52.2, LatY: 9.0, Difficulty: "easy"},
	{X: "Brussels", Y: "Accra", LatX: 50.8, LatY: 5.6, Difficulty: "easy"},
	{X: "San Francisco", Y: "Havana", LatX: 37.8, LatY: 23.1, Difficulty: "medium"},
	{X: "Chicago", Y: "Bogota", LatX: 41.9, LatY: 4.7, Difficulty: "medium"},
	{X: "Denver", Y: "Panama City", LatX: 39.7, LatY: 9.0, Difficulty: "medium"},
	{X: "Philadelphia", Y: "Caracas", LatX: 40.0, LatY: 10.5, Difficulty: "medium"},
	{X: "Houston", Y: "Quito", LatX: 29.8, LatY: -0.2, Difficulty: "medium"},
	{X: "Miami", Y: "Brasilia", LatX: 25.8, LatY: -15.8, Difficulty: "medium"},
	{X: "Seoul", Y: "Jakarta", LatX: 37.6, LatY: -6.2, Difficulty: "medium"},
	{X: "Shanghai", Y: "Manila", LatX: 31.2, LatY: 14.6, Difficulty: "medium"},
	{X: "Osaka", Y: "Ho Chi Minh City", LatX: 34.7, LatY: 10.8, Difficulty: "medium"},
	{X: "Taipei", Y: "Kuala Lumpur", LatX: 25.0, LatY: 3.1, Difficulty: "medium"},
	{X: "Frankfurt", Y: "Prague", LatX: 50.1, LatY: 50.1, Difficulty: "hard"}, // exact tie
	{X: "Lyon", Y: "Venice", LatX: 45.8, LatY: 45.4, Difficulty: "hard"},
	{X: "Barcelona", Y: "Naples", LatX: 41.4, LatY: 40.9, Difficulty: "hard"},
	{X: "Manchester", Y: "Hamburg", LatX: 53.5, LatY: 53.6, Difficulty: "hard"},
	{X: "Glasgow", Y: "Copenhagen", LatX: 55.9, LatY: 55.7, Difficulty: "hard"},
	{X: "Marseille", Y: "Florence", LatX: 43.3, LatY: 43.8, Difficulty: "hard"},
	{X: "Birmingham", Y: "Dusseldorf", LatX: 52.5, LatY: 51.2, Difficulty: "hard"},
	{X: "Leeds", Y: "Amsterdam", LatX: 53.8, LatY: 52.4, Difficulty: "hard"},
	{X: "Zurich", Y: "Budapest", LatX: 47.4, LatY: 47.5, Difficulty: "hard"},
	{X: "Geneva", Y: "Ljubljana", LatX: 46.2, LatY: 46.1, Difficulty: "hard"},
	{X: "Anchorage", Y: "Mexico City", LatX: 61.2, LatY: 19.4, Difficulty: "easy"},
	{X: "Fairbanks", Y: "Miami", LatX: 64.8, LatY: 25.8, Difficulty: "easy"},
	{X: "Montreal", Y: "Santiago", LatX: 45.5, LatY: -33.4, Difficulty: "easy"},
	{X: "Ottawa", Y: "Montevideo", LatX: 45.4, LatY: -34.9, Difficulty: "easy"},
	{X: "Quebec City", Y: "Rio de Janeiro", LatX: 46.8, LatY: -22.9, Difficulty: "easy"},
}

var datePairs = []DatePair{
	{X: "World War I", Y: "World War II", YearX: 1914, YearY: 1939, Difficulty: "easy"},
	{X: "the American Revolution", Y: "the French Revolution", YearX: 1776, YearY: 1789, Difficulty: "easy"},
	{X: "the fall of the Roman Empire", Y: "the Renaissance", YearX: 476, YearY: 1400, Difficulty: "easy"},
	{X: "the invention of the printing press", Y: "the invention of the internet", YearX: 1440, YearY: 1969, Difficulty: "easy"},
	{X: "the American Civil War", Y: "the Vietnam War", YearX: 1861, YearY: 1955, Difficulty: "easy"},
	{X: "the signing of the Magna Carta", Y: "the signing of the US Constitution", YearX: 1215, YearY: 1787, Difficulty: "easy"},
	{X: "the Black Death in Europe", Y: "the Spanish Flu pandemic", YearX: 1347, YearY: 1918, Difficulty: "easy"},
	{X: "Columbus reaching the Americas", Y: "the Moon landing", YearX: 1492, YearY: 1969, Difficulty: "easy"},
	{X: "the construction of the Great Wall of China", Y: "the construction of the Berlin Wall", YearX: -700, YearY: 1961, Difficulty: "easy"},
	{X: "the birth of Christianity", Y: "the birth of Islam", YearX: 30, YearY: 610, Difficulty: "easy"},
	{X: "the assassination of JFK", Y: "the assassination of MLK", YearX: 1963, YearY: 1968, Difficulty: "medium"},
	{X: "the sinking of the Titanic", Y: "the sinking of the Lusitania", YearX: 1912, YearY: 1915, Difficulty: "medium"},
	{X: "the discovery of penicillin", Y: "the discovery of DNA structure", YearX: 1928, YearY: 1953, Difficulty: "medium"},
	{X: "the Wright brothers' first flight", Y: "Lindbergh's transatlantic flight", YearX: 1903, YearY: 1927, Difficulty: "medium"},
	{X: "the invention of the telephone", Y: "the invention of the radio", YearX: 1876, YearY: 1895, Difficulty: "medium"},
	{X: "the founding of Google", Y: "the founding of Facebook", YearX: 1998, YearY: 2004, Difficulty: "medium"},
	{X: "the release of the iPhone", Y: "the release of the iPad", YearX: 2007, YearY: 2010, Difficulty: "medium"},
	{X: "the fall of the Berlin Wall", Y: "the dissolution of the Soviet Union", YearX: 1989, YearY: 1991, Difficulty: "medium"},
	{X: "the Chernobyl disaster", Y: "the Fukushima disaster", YearX: 1986, YearY: 2011, Difficulty: "medium"},
	{X: "the Gulf War", Y: "the Iraq War", YearX: 1990, YearY: 2003, Difficulty: "medium"},
	{X: "the start of the Korean War", Y: "the start of the Vietnam War", YearX: 1950, YearY: 1955, Difficulty: "hard"},
	{X: "the Cuban Missile Crisis", Y: "the Bay of Pigs invasion", YearX: 1962, YearY: 1961, Difficulty: "hard"},
	{X: "the bombing of Hiroshima", Y: "the bombing of Nagasaki", YearX: 1945, YearY: 1945, Difficulty: "hard"}, // same year
	{X: "the French Revolution", Y: "the Haitian Revolution", YearX: 1789, YearY: 1791, Difficulty: "hard"},
	{X: "the founding of Rome", Y: "the founding of Carthage", YearX: -753, YearY: -814, Difficulty: "hard"},
	{X: "the death of Mozart", Y: "the death of Beethoven", YearX: 1791, YearY: 1827, Difficulty: "hard"},
	{X: "the publication of Origin of Species", Y: "the publication of Communist Manifesto", YearX: 1859, YearY: 1848, Difficulty: "hard"},
	{X: "the assassination of Lincoln", Y: "the assassination of Garfield", YearX: 1865, YearY: 1881, Difficulty: "hard"},
	{X: "the Spanish-American War", Y: "the Russo-Japanese War", YearX: 1898, YearY: 1904, Difficulty: "hard"},
	{X: "the completion of the Suez Canal", Y: "the completion of the Panama Canal", YearX: 1869, YearY: 1914, Difficulty: "hard"},
	{X: "the Reformation", Y: "the Counter-Reformation", YearX: 1517, YearY: 1545, Difficulty: "medium"},
	{X: "the discovery of America by Vikings", Y: "the discovery of America by Columbus", YearX: 1000, YearY: 1492, Difficulty: "medium"},
	{X: "the invention of the steam engine", Y: "the invention of the internal combustion engine", YearX: 1712, YearY: 1876, Difficulty: "easy"},
	{X: "the first Olympics of modern era", Y: "the first World Cup", YearX: 1896, YearY: 1930, Difficulty: "medium"},
	{X: "the founding of the UN", Y: "the founding of NATO", YearX: 1945, YearY: 1949, Difficulty: "hard"},
	{X: "the launch of Sputnik", Y: "the launch of Explorer 1", YearX: 1957, YearY: 1958, Difficulty: "hard"},
	{X: "the Apollo 11 Moon landing", Y: "the Apollo 13 mission", YearX: 1969, YearY: 1970, Difficulty: "hard"},
	{X: "the Watergate scandal", Y: "the Iran-Contra affair", YearX: 1972, YearY: 1985, Difficulty: "medium"},
	{X: "the end of apartheid in South Africa", Y: "the Rwandan genocide", YearX: 1994, YearY: 1994, Difficulty: "hard"}, // same year
	{X: "the Brexit referendum", Y: "the election of Donald Trump", YearX: 2016, YearY: 2016, Difficulty: "hard"},       // same year
	{X: "the extinction of dinosaurs", Y: "the appearance of humans", YearX: -66000000, YearY: -300000, Difficulty: "easy"},
	{X: "the building of the Pyramids", Y: "the building of the Colosseum", YearX: -2560, YearY: 80, Difficulty: "easy"},
	{X: "the invention of writing", Y: "the invention of the alphabet", YearX: -3400, YearY: -1050, Difficulty: "easy"},
	{X: "the Bronze Age", Y: "the Iron Age", YearX: -3300, YearY: -1200, Difficulty: "easy"},
	{X: "the life of Confucius", Y: "the life of Jesus", YearX: -551, YearY: 0, Difficulty: "easy"},
}

var populationPairs = []PopulationPair{
	{X: "Tokyo", Y: "Paris", PopX: 37_400_000, PopY: 2_100_000, Difficulty: "easy", EntityType: "city"},
	{X: "Shanghai", Y: "Berlin", PopX: 28_500_000, PopY: 3_600_000, Difficulty: "easy", EntityType: "city"},
	{X: "Delhi", Y: "Sydney", PopX: 32_900_000, PopY: 5_300_000, Difficulty: "easy", EntityType: "city"},
	{X: "Mumbai", Y: "Toronto", PopX: 21_700_000, PopY: 6_200_000, Difficulty: "easy", EntityType: "city"},
	{X: "Beijing", Y: "Madrid", PopX: 21_500_000, PopY: 3_300_000, Difficulty: "easy", EntityType: "city"},
	{X: "Cairo", Y: "Amsterdam", PopX: 21_300_000, PopY: 870_000, Difficulty: "easy", EntityType: "city"},
	{X: "Mexico City", Y: "Vienna", PopX: 21_800_000, PopY: 1_900_000, Difficulty: "easy", EntityType: "city"},
	{X: "Sao Paulo", Y: "Stockholm", PopX: 22_400_000, PopY: 980_000, Difficulty: "easy", EntityType: "city"},
	{X: "Lagos", Y: "Dublin", PopX: 15_400_000, PopY: 550_000, Difficulty: "easy", EntityType: "city"},
	{X: "Dhaka", Y: "Brussels", PopX: 22_500_000, PopY: 1_200_000, Difficulty: "easy", EntityType: "city"},
	{X: "China", Y: "Canada", PopX: 1_410_000_000, PopY: 38_000_000, Difficulty: "easy", EntityType: "country"},
	{X: "India", Y: "Australia", PopX: 1_380_000_000, PopY: 26_000_000, Difficulty: "easy", EntityType: "country"},
	{X: "United States", Y: "Netherlands", PopX: 330_000_000, PopY: 17_500_000, Difficulty: "easy", EntityType: "country"},
	{X: "Indonesia", Y: "Sweden", PopX: 277_000_000, PopY: 10_500_000, Difficulty: "easy", EntityType: "country"},
	{X: "Brazil", Y: "Portugal", PopX: 215_000_000, PopY: 10_300_000, Difficulty: "easy", EntityType: "country"},
	{X: "New York City", Y: "London", PopX: 8_300_000, PopY: 8_800_000, Difficulty: "medium", EntityType: "city"},
	{X: "Los Angeles", Y: "Chicago", PopX: 3_900_000, PopY: 2_700_000, Difficulty: "medium", EntityType: "city"},
	{X: "Houston", Y: "Phoenix", PopX: 2_300_000, PopY: 1_600_000, Difficulty: "medium", EntityType: "city"},
	{X: "Bangkok", Y: "Hong Kong", PopX: 10_700_000, PopY: 7_400_000, Difficulty: "medium", EntityType: "city"},
	{X: "Singapore", Y: "Dubai", PopX: 5_900_000, PopY: 3_500_000, Difficulty: "medium", EntityType: "city"},
	{X: "Germany", Y: "France", PopX: 84_000_000, PopY: 67_000_000, Difficulty: "medium", EntityType: "country"},
	{X: "United Kingdom", Y: "Italy", PopX: 67_000_000, PopY: 59_000_000, Difficulty: "medium", EntityType: "country"},
	{X: "South Korea", Y: "Spain", PopX: 52_000_000, PopY: 47_000_000, Difficulty: "medium", EntityType: "country"},
	{X: "Canada", Y: "Poland", PopX: 38_000_000, PopY: 38_000_000, Difficulty: "medium", EntityType: "country"}, // exact tie
	{X: "Vietnam", Y: "Germany", PopX: 98_000_000, PopY: 84_000_000, Difficulty: "medium", EntityType: "country"},
	{X: "San Francisco", Y: "Seattle", PopX: 870_000, PopY: 750_000, Difficulty: "hard", EntityType: "city"},
	{X: "Boston", Y: "Denver", PopX: 675_000, PopY: 715_000, Difficulty: "hard", EntityType: "city"},
	{X: "Miami", Y: "Atlanta", PopX: 440_000, PopY: 500_000, Difficulty: "hard", EntityType: "city"},
	{X: "Portland", Y: "Las Vegas", PopX: 650_000, PopY: 640_000, Difficulty: "hard", EntityType: "city"},
	{X: "Austin", Y: "San Jose", PopX: 980_000, PopY: 1_000_000, Difficulty: "hard", EntityType: "city"},
	{X: "Netherlands", Y: "Belgium", PopX: 17_500_000, PopY: 11_600_000, Difficulty: "hard", EntityType: "country"},
	{X: "Portugal", Y: "Greece", PopX: 10_300_000, PopY: 10_400_000, Difficulty: "hard", EntityType: "country"},
	{X: "Czech Republic", Y: "Hungary", PopX: 10_500_000, PopY: 9_700_000, Difficulty: "hard", EntityType: "country"},
	{X: "Sweden", Y: "Austria", PopX: 10_500_000, PopY: 9_000_000, Difficulty: "hard", EntityType: "country"},
	{X: "Switzerland", Y: "Israel", PopX: 8_700_000, PopY: 9_200_000, Difficulty: "hard", EntityType: "country"},
	{X: "Jakarta", Y: "Manila", PopX: 10_600_000, PopY: 14_400_000, Difficulty: "medium", EntityType: "city"},
	{X: "Istanbul", Y: "Moscow", PopX: 15_500_000, PopY: 12_500_000, Difficulty: "medium", EntityType: "city"},
	{X: "Buenos Aires", Y: "Lima", PopX: 15_400_000, PopY: 10_900_000, Difficulty: "medium", EntityType: "city"},
	{X: "Kolkata", Y: "Chennai", PopX: 14_900_000, PopY: 11_500_000, Difficulty: "medium", EntityType: "city"},
	{X: "Nigeria", Y: "Ethiopia", PopX: 220_000_000, PopY: 120_000_000, Difficulty: "easy", EntityType: "country"},
}
