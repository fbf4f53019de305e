package repository

import (
	"time"

	"carshop/internal/model"
)

func seedProducts() []model.Product {
	base := []model.Product{
		{
			ID:          1,
			Name:        "VinFast President 2021 - Động cơ V8 - Khi người Việt vươn tầm xe sang",
			Price:       4600000000,
			Image:       "/images/VinFastPresident2021.jpg",
			Thumbnail:   "/images/thumbnails/VinFastPresident2021.jpg",
			Rate:        4.5,
			Description: "Được thiết kế đúng chất \"Chủ tịch\" với ngoại hình bệ vệ, sang trọng.",
			ShopID:      1,
			ShopName:    "President Đà Nẵng",
		},
		{
			ID:          2,
			Name:        "Rolls-Royce Phantom - Đồ sộ và cổ điển nhưng trẻ trung và hiện đại",
			Price:       46113000000,
			Image:       "/images/rolls-royce-phantom.jpg",
			Thumbnail:   "/images/thumbnails/rolls-royce-phantom.jpg",
			Rate:        5,
			Description: "Is a full-sized luxury saloon debuting in 2017. It is the eighth and current generation of the Rolls-Royce Phantom, and the second launched by Rolls-Royce under BMW ownership.",
			ShopID:      3,
			ShopName:    "Rolls-Royce Motor Cars",
		},
		{
			ID:          3,
			Name:        "BMW XM - SUV plug-in 740 hp & 738 lb-ft",
			Price:       5600000000,
			Image:       "/images/BMW-XM.jpeg",
			Thumbnail:   "/images/thumbnails/BMW-XM.jpeg",
			Rate:        4,
			Description: "Extroverted. Expressionistic. A radically new concept that refuses to back down. Experience the BMW Concept XM: an electrified high-performance luxury vehicle unlike anything you've ever seen.",
			ShopID:      4,
			ShopName:    "Citroën Vietnam",
		},
		{
			ID:          4,
			Name:        "Mercedes-Benz VISION AVTR - Sensual Purity and Modern Luxury",
			Price:       880000000,
			Image:       "/images/Mercedes-Benz-VISION-AVTR.jpg",
			Thumbnail:   "/images/thumbnails/Mercedes-Benz-VISION-AVTR.jpg",
			Rate:        5,
			Description: "Partnering with the creators of Avatar, Mercedes-Benz designed the VISION AVTR to imagine a sustainable future for the automobile.",
			ShopID:      5,
			ShopName:    "Mercedes Future",
		},
		{
			ID:          5,
			Name:        "VinFast Lux SA2.0 - MẠNH MẼ & NĂNG ĐỘNG",
			Price:       1835693000,
			Image:       "/images/VinFast-Lux-SA2.0.png",
			Thumbnail:   "/images/thumbnails/VinFast-Lux-SA2.0.png",
			Rate:        3,
			Description: "Sở hữu một ngoại thất với tỉ lệ hoàn hảo, chiều dài cơ sở lớn, nắp capô mạnh mẽ hướng ra trước một cách vừa phải và rộng, tạo nên một chiếc xe hội tụ đầy đủ những thành tốt tuyệt vời nhất.",
			ShopID:      2,
			ShopName:    "WorldCar",
		},
		{
			ID:          6,
			Name:        "Bugatti Chiron Noire - SPORTIVE - ELEGANCE - LUXURY AND POWER",
			Price:       69000000000,
			Image:       "/images/bugatti-chiron-noire.jpg",
			Thumbnail:   "/images/thumbnails/bugatti-chiron-noire.jpg",
			Rate:        5,
			Description: "The story of BUGATTI’s La Voiture Noire is a renowned myth within the world of automotive. Created by Jean Bugatti, the black Type 57 SC Atlantic went missing at the beginning of the Second World War and was never seen again.",
			ShopID:      7,
			ShopName:    "Automobiles Ettore Bugatti",
		},
		{
			ID:          7,
			Name:        "Mercedes-Benz-EQG-G-Class-2021 - An icon embraces the future",
			Price:       2200000000,
			Image:       "/images/Mercedes-Benz-EQG.jpg",
			Thumbnail:   "/images/thumbnails/Mercedes-Benz-EQG.jpg",
			Rate:        5,
			Description: "No one can certainly tell where the future will take us. But one thing is certain: the G-Class will guide the way.",
			ShopID:      5,
			ShopName:    "Mercedes Future",
		},
		{
			ID:          8,
			Name:        "Porsche 911 Carrera S - Timeless design, contemporary interpretation",
			Price:       7850000000,
			Image:       "/images/Porsche-911.jpg",
			Thumbnail:   "/images/thumbnails/Porsche-911.jpg",
			Rate:        5,
			Description: "The harmony of tradition and modernity, the iconic flyline and the continuous light strip.",
			ShopID:      6,
			ShopName:    "Porsche Vietnam",
		},
		{
			ID:          9,
			Name:        "Porsche 959 - Siêu phẩm của thế kỷ 20",
			Price:       4350000000,
			Image:       "/images/Porsche-959.jpg",
			Thumbnail:   "/images/thumbnails/Porsche-959.jpg",
			Rate:        5,
			Description: "Đây là một chiếc Porsche 959 có một không hai đã được thiết kế đặc biệt cho một hoàng gia Qatar vào năm 1989. Giờ đây đã xuất hiện tại Porsche Vietnam.",
			ShopID:      6,
			ShopName:    "Porsche Vietnam",
		},
		{
			ID:          10,
			Name:        "Mercedes-Benz C 300 AMG - Dynamism is an attitude",
			Price:       1499000000,
			Image:       "/images/MERCEDES-BENZ_C300.jpg",
			Thumbnail:   "/images/thumbnails/MERCEDES-BENZ_C300.jpg",
			Rate:        4,
			Description: "As sensually pure as ever. As dynamic and progressive as never before.",
			ShopID:      5,
			ShopName:    "Mercedes Future",
		},
	}

	// The demo catalog repeats itself to fill out a few pages.
	now := time.Now().UnixMilli()
	products := make([]model.Product, 0, 23)
	for i := 0; i < 23; i++ {
		p := base[i%10]
		p.ID = int64(i) + 1
		p.AddedAt = now
		products = append(products, p)
	}
	return products
}

func seedPeoples() []model.People {
	return []model.People{
		{
			ID:        1,
			Username:  "mySouthAfrica",
			Email:     "nelson123@gmail.com",
			Firstname: "Nelson",
			Lastname:  "Mandela",
			Avatar:    "/images/nelson-mandela.jpg",
			Country:   "South Africa",
			Phone:     "+16112151566",
		},
		{
			ID:        2,
			Username:  "trinhdamdang",
			Email:     "trinh89@gmail.com",
			Firstname: "Ngọc Trinh",
			Lastname:  "Trần Thị",
			Avatar:    "/images/ngoc-trinh.jpg",
			Country:   "Vietnam",
			Phone:     "+84451212323",
			Facebook:  "facebook.com/ngoctrinhfashion89",
		},
		{
			ID:        3,
			Username:  "MicheleMoniqueReis",
			Email:     "hanhan@gmail.com",
			Firstname: "Gia Hân",
			Lastname:  "Lý",
			Avatar:    "/images/ly-gia-han.jpg",
			Country:   "Hong Kong",
			Phone:     "+451651561212",
		},
		{
			ID:        4,
			Username:  "joe_vjpprodeptrajkuteno1",
			Email:     "joe_biden@gmail.com",
			Firstname: "Joe",
			Lastname:  "Biden",
			Avatar:    "/images/joe-biden.jpg",
			Country:   "United States",
			Phone:     "+151261561248",
			Facebook:  "facebook.com/joebiden",
		},
		{
			ID:        5,
			Username:  "jisoo_Blackpink",
			Email:     "jisoo_bp@gmail.com",
			Firstname: "Jisoo",
			Lastname:  "Jisoo",
			Avatar:    "/images/Jisoo.jpg",
			Country:   "Korea",
			Phone:     "+599156566628",
			Facebook:  "facebook.com/BLACKPINK.JISOO",
		},
		{
			ID:        6,
			Username:  "yangyang",
			Email:     "yangyangboy@gmail.com",
			Firstname: "Dương",
			Lastname:  "Dương",
			Avatar:    "/images/duong-duong.jpg",
			Country:   "China",
			Phone:     "+84516521451",
			Facebook:  "facebook.com/%E6%9D%A8%E6%B4%8B-Yang-Yang-287844248260916",
		},
		{
			ID:        7,
			Username:  "trump_ducky",
			Email:     "trump-donald-duck@gmail.com",
			Firstname: "Donald",
			Lastname:  "Trump",
			Avatar:    "/images/donald-trump.jpg",
			Country:   "United States",
			Phone:     "+451515515661",
			Facebook:  "facebook.com/DonaldTrump",
		},
		{
			ID:        8,
			Username:  "dilraba_dilmurat",
			Email:     "rabamurat@gmail.com",
			Firstname: "Nhiệt Ba",
			Lastname:  "Địch Lệ",
			Avatar:    "/images/dich-le-nhiet-ba.jpg",
			Country:   "China",
			Phone:     "+4894624862",
			Facebook:  "facebook.com/standilireba",
		},
		{
			ID:        9,
			Username:  "RonaldoFootball4ever",
			Email:     "crisnaldo@gmail.com",
			Firstname: "Cristiano",
			Lastname:  "Ronaldo",
			Avatar:    "/images/Cristiano_Ronaldo.jpg",
			Country:   "Portugal",
			Phone:     "+459451233245",
			Facebook:  "facebook.com/Cristiano",
		},
	}
}
