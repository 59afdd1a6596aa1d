package model

// Denominations is the catalogue of church denominations that the church
// handler matches against names and websites. Longer names must win over
// substrings they contain, so matching sorts by length before compiling.
var Denominations = []string{
	"Anglican",
	"Apostolic",
	"Assemblies of God",
	"Baptist",
	"Brethren",
	"Catholic",
	"Christian Reformed",
	"Church of Christ",
	"Church of England",
	"Church of God",
	"Congregational",
	"Episcopal",
	"Evangelical",
	"Lutheran",
	"Mennonite",
	"Methodist",
	"Nazarene",
	"Non-denominational",
	"Orthodox",
	"Pentecostal",
	"Presbyterian",
	"Quaker",
	"Reformed",
	"Salvation Army",
	"Seventh-day Adventist",
	"Uniting",
	"Vineyard",
	"Wesleyan",
}
