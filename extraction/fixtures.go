package extraction

// Fixture tables backing MockExtractor. One row of each table describes the
// same individual, keyed by name.

var aadhaarFrontMocks = []Record{
	{"name": "Rahul Sharma", "dob": "1988-05-23", "gender": "Male", "aadhar_number": "234567890123"},
	{"name": "Priya Singh", "dob": "1992-11-10", "gender": "Female", "aadhar_number": "345678901234"},
	{"name": "Amit Patel", "dob": "1985-03-15", "gender": "Male", "aadhar_number": "456789012345"},
	{"name": "Sneha Reddy", "dob": "1990-07-19", "gender": "Female", "aadhar_number": "567890123456"},
	{"name": "Vikram Desai", "dob": "1979-12-01", "gender": "Male", "aadhar_number": "678901234567"},
	{"name": "Anjali Mehta", "dob": "1995-04-22", "gender": "Female", "aadhar_number": "789012345678"},
	{"name": "Rohit Verma", "dob": "1983-09-30", "gender": "Male", "aadhar_number": "890123456789"},
	{"name": "Kavita Joshi", "dob": "1987-06-14", "gender": "Female", "aadhar_number": "901234567890"},
	{"name": "Suresh Kumar", "dob": "1975-01-05", "gender": "Male", "aadhar_number": "123456780912"},
	{"name": "Meena Gupta", "dob": "1991-08-27", "gender": "Female", "aadhar_number": "234567801923"},
}

var aadhaarBackMocks = []Record{
	{"address": "Flat 12B, Green Residency, Baner Road, Pune, Maharashtra", "pincode": "411045"},
	{"address": "23, Rose Villa, Sector 17, Chandigarh", "pincode": "160017"},
	{"address": "B-45, Lake View, Salt Lake, Kolkata, West Bengal", "pincode": "700064"},
	{"address": "Plot 8, MG Road, Bengaluru, Karnataka", "pincode": "560001"},
	{"address": "H.No. 123, Lajpat Nagar, New Delhi", "pincode": "110024"},
	{"address": "501, Palm Heights, Andheri East, Mumbai", "pincode": "400069"},
	{"address": "7, Lotus Enclave, Banjara Hills, Hyderabad", "pincode": "500034"},
	{"address": "C-22, Ashok Nagar, Chennai, Tamil Nadu", "pincode": "600083"},
	{"address": "D-9, Alkapuri, Vadodara, Gujarat", "pincode": "390007"},
	{"address": "A-1, Civil Lines, Jaipur, Rajasthan", "pincode": "302006"},
}

var pancardMocks = []Record{
	{"name": "Rahul Sharma", "pan_number": "FMPPK1234L"},
	{"name": "Priya Singh", "pan_number": "BNZPS1234K"},
	{"name": "Amit Patel", "pan_number": "AKLPJ2345M"},
	{"name": "Sneha Reddy", "pan_number": "QWERT5678Z"},
	{"name": "Vikram Desai", "pan_number": "ZXCVB6789N"},
	{"name": "Anjali Mehta", "pan_number": "LKJHG3456B"},
	{"name": "Rohit Verma", "pan_number": "POIUY4321V"},
	{"name": "Kavita Joshi", "pan_number": "MNBVC0987X"},
	{"name": "Suresh Kumar", "pan_number": "ASDFG7654C"},
	{"name": "Meena Gupta", "pan_number": "GHJKL8765D"},
}

var passportMocks = []Record{
	{"name": "Rahul Sharma", "passport_number": "M1234567", "address": "22, Lotus Apartments, Andheri West, Mumbai, Maharashtra, 400053"},
	{"name": "Priya Singh", "passport_number": "N2345678", "address": "14, Sunrise Towers, Powai, Mumbai, Maharashtra, 400076"},
	{"name": "Amit Patel", "passport_number": "P3456789", "address": "8, Green Park, South Delhi, 110016"},
	{"name": "Sneha Reddy", "passport_number": "Q4567890", "address": "33, Lake Gardens, Kolkata, 700045"},
	{"name": "Vikram Desai", "passport_number": "R5678901", "address": "55, Residency Road, Bengaluru, 560025"},
	{"name": "Anjali Mehta", "passport_number": "S6789012", "address": "12, Marine Drive, Kochi, 682031"},
	{"name": "Rohit Verma", "passport_number": "T7890123", "address": "7, Civil Lines, Jaipur, 302006"},
	{"name": "Kavita Joshi", "passport_number": "U8901234", "address": "19, Sector 21, Chandigarh, 160022"},
	{"name": "Suresh Kumar", "passport_number": "V9012345", "address": "2, MG Road, Pune, 411001"},
	{"name": "Meena Gupta", "passport_number": "W0123456", "address": "101, City Center, Ahmedabad, 380009"},
}
