package faqstore

import "github.com/renty-ai/renty-ai/pkg/types"

// seedEntries 编译期内置的 FAQ 种子数据，id 按装载顺序编号
func seedEntries() []types.KnowledgeEntry {
	return []types.KnowledgeEntry{
		{
			ID:         "faq_1",
			Question:   "What documents do I need to rent an apartment in NYC?",
			QuestionZH: "在纽约租房需要什么文件？",
			Answer:     "To rent an apartment in NYC, you typically need: 1) Proof of income (pay stubs, employment letter, or bank statements), 2) Government-issued ID (passport for international students), 3) Social Security Number or ITIN, 4) Rental application, 5) Security deposit (usually 1-2 months rent), 6) First month's rent, 7) Guarantor information if your income is less than 40x the monthly rent.",
			AnswerZH:   "在纽约租房，您通常需要：1）收入证明（工资单、雇佣信或银行对账单），2）政府颁发的身份证件（国际学生需要护照），3）社会安全号码或ITIN，4）租房申请，5）押金（通常为1-2个月租金），6）第一个月的租金，7）如果您的收入少于月租金的40倍，需要担保人信息。",
			Topic:      "rental_process",
			Keywords:   []string{"documents", "rent", "application", "passport", "income", "guarantor"},
			KeywordsZH: []string{"文件", "租房", "申请", "护照", "收入", "担保人"},
		},
		{
			ID:         "faq_2",
			Question:   "How do I find apartments near NYU?",
			QuestionZH: "如何找到纽约大学附近的公寓？",
			Answer:     "To find apartments near NYU: 1) Check areas like Greenwich Village, East Village, SoHo, and Lower East Side, 2) Use websites like StreetEasy, Zillow, or Apartments.com, 3) Consider NYU's off-campus housing resources, 4) Look for roommate opportunities on Facebook groups or university boards, 5) Visit apartments in person, 6) Budget for higher rents in Manhattan (typically $2,500-$4,000+ for studios/1BR).",
			AnswerZH:   "找纽约大学附近的公寓：1）查看格林威治村、东村、苏荷区和下东区等地区，2）使用StreetEasy、Zillow或Apartments.com等网站，3）考虑纽约大学的校外住房资源，4）在Facebook群组或大学布告板上寻找室友机会，5）亲自参观公寓，6）为曼哈顿较高的租金做预算（工作室/一居室通常为$2,500-$4,000+）。",
			Topic:      "university",
			Keywords:   []string{"NYU", "Greenwich Village", "East Village", "apartment hunting", "roommate"},
			KeywordsZH: []string{"纽约大学", "格林威治村", "东村", "找公寓", "室友"},
		},
		{
			ID:         "faq_3",
			Question:   "How do I set up utilities in my new apartment?",
			QuestionZH: "如何在新公寓设置水电煤气？",
			Answer:     "To set up utilities in NYC: 1) Electricity: Contact Con Edison (ConEd) at least 2 weeks before move-in, 2) Gas: Also through Con Edison if needed, 3) Internet: Choose from providers like Verizon Fios, Spectrum, or Optimum, 4) Water: Usually included in rent or handled by landlord, 5) Heat: Often included in rent, 6) Bring ID, lease agreement, and be prepared for deposits. Some landlords may handle certain utilities.",
			AnswerZH:   "在纽约设置水电煤气：1）电力：至少在搬入前2周联系Con Edison（ConEd），2）燃气：如果需要也通过Con Edison，3）网络：选择Verizon Fios、Spectrum或Optimum等供应商，4）水：通常包含在租金中或由房东处理，5）暖气：通常包含在租金中，6）携带身份证、租约，并准备押金。有些房东可能会处理某些公用事业。",
			Topic:      "utilities",
			Keywords:   []string{"utilities", "Con Edison", "electricity", "gas", "internet", "Verizon", "Spectrum"},
			KeywordsZH: []string{"水电", "电力", "燃气", "网络"},
		},
		{
			ID:         "faq_4",
			Question:   "What's the difference between living in Manhattan vs Jersey City?",
			QuestionZH: "住在曼哈顿和泽西市有什么区别？",
			Answer:     "Manhattan vs Jersey City: MANHATTAN - Pros: Close to universities, vibrant nightlife, no commute to Manhattan, walkable. Cons: Very expensive ($3,000+ for 1BR), crowded, small spaces. JERSEY CITY - Pros: More affordable ($2,000-3,000 for 1BR), larger apartments, PATH train to Manhattan in 10-20 minutes, parking available. Cons: Commute required, less nightlife, groceries may be limited. Many students choose Jersey City for better value.",
			AnswerZH:   "曼哈顿 vs 泽西市：曼哈顿 - 优点：靠近大学，夜生活丰富，无需通勤到曼哈顿，步行友好。缺点：非常昂贵（一居室$3,000+），拥挤，空间小。泽西市 - 优点：更实惠（一居室$2,000-3,000），公寓更大，PATH地铁10-20分钟到曼哈顿，有停车位。缺点：需要通勤，夜生活较少，购物可能有限。许多学生选择泽西市获得更好的性价比。",
			Topic:      "neighborhood",
			Keywords:   []string{"Manhattan", "Jersey City", "PATH train", "commute", "rent comparison", "cost"},
			KeywordsZH: []string{"曼哈顿", "泽西市", "通勤", "性价比"},
		},
		{
			ID:         "faq_5",
			Question:   "How do I avoid rental scams in NYC?",
			QuestionZH: "如何在纽约避免租房诈骗？",
			Answer:     "To avoid rental scams: 1) Never send money before seeing the apartment in person, 2) Be wary of prices significantly below market rate, 3) Verify the landlord's identity and ownership, 4) Don't wire money or pay with gift cards, 5) Meet at the actual property, not just photos, 6) Check the landlord's references, 7) Use reputable websites and licensed brokers, 8) Trust your instincts - if it seems too good to be true, it probably is.",
			AnswerZH:   "避免租房诈骗：1）在亲自看房前绝不汇款，2）警惕明显低于市场价的价格，3）验证房东身份和所有权，4）不要电汇或用礼品卡付款，5）在实际房产见面，不仅仅看照片，6）检查房东的推荐信，7）使用信誉良好的网站和持证经纪人，8）相信直觉 - 如果看起来好得不真实，那可能就是假的。",
			Topic:      "rental_process",
			Keywords:   []string{"scam", "fraud", "safety", "wire transfer", "verification", "landlord"},
			KeywordsZH: []string{"诈骗", "骗局", "安全", "房东"},
		},
		{
			ID:         "faq_6",
			Question:   "What should I know about apartment partitions (隔断) in NYC?",
			QuestionZH: "关于纽约公寓隔断我应该了解什么？",
			Answer:     "Apartment partitions (隔断) in NYC: 1) Often used to create extra bedrooms in shared apartments, 2) May not be legal - check building regulations, 3) Usually temporary walls that don't reach the ceiling, 4) Can affect ventilation and fire safety, 5) May impact lease terms and deposit, 6) Cheaper option but less privacy, 7) Discuss with landlord and roommates before installing, 8) Some buildings prohibit partitions entirely.",
			AnswerZH:   "纽约公寓隔断：1）通常用于在合租公寓中创建额外卧室，2）可能不合法 - 检查建筑法规，3）通常是不到天花板的临时墙，4）可能影响通风和消防安全，5）可能影响租约条款和押金，6）更便宜的选择但隐私较少，7）安装前与房东和室友讨论，8）某些建筑完全禁止隔断。",
			Topic:      "rental_process",
			Keywords:   []string{"partition", "隔断", "temporary wall", "roommate", "legal", "building regulations"},
			KeywordsZH: []string{"隔断", "临时墙", "室友", "建筑法规"},
		},
	}
}

type topicDefinition struct {
	key      string
	category types.TopicCategory
}

// topicDefinitions 主题元信息，顺序即对外展示顺序
func topicDefinitions() []topicDefinition {
	return []topicDefinition{
		{
			key: "rental_process",
			category: types.TopicCategory{
				Name:          "Rental Process",
				NameZH:        "租赁流程",
				Description:   "Apartment hunting, applications, lease signing",
				DescriptionZH: "找房子、申请、签租约",
				Keywords:      []string{"lease", "application", "apartment", "rental", "documents"},
			},
		},
		{
			key: "utilities",
			category: types.TopicCategory{
				Name:          "Utilities Setup",
				NameZH:        "水电煤气设置",
				Description:   "Setting up electricity, gas, internet, etc.",
				DescriptionZH: "设置电力、燃气、网络等",
				Keywords:      []string{"electricity", "gas", "internet", "utilities", "Con Edison"},
			},
		},
		{
			key: "moving",
			category: types.TopicCategory{
				Name:          "Moving Process",
				NameZH:        "搬家流程",
				Description:   "Moving procedures and tips",
				DescriptionZH: "搬家程序和技巧",
				Keywords:      []string{"moving", "relocation", "truck", "boxes"},
			},
		},
		{
			key: "neighborhood",
			category: types.TopicCategory{
				Name:          "Neighborhoods",
				NameZH:        "社区",
				Description:   "Area information and recommendations",
				DescriptionZH: "地区信息和推荐",
				Keywords:      []string{"neighborhood", "area", "location", "safety", "Manhattan", "Jersey City"},
			},
		},
		{
			key: "university",
			category: types.TopicCategory{
				Name:          "University Information",
				NameZH:        "大学信息",
				Description:   "University-specific housing guidance",
				DescriptionZH: "大学特定住房指导",
				Keywords:      []string{"university", "campus", "student", "commute", "NYU", "Columbia"},
			},
		},
		{
			key: "financial",
			category: types.TopicCategory{
				Name:          "Financial Guidance",
				NameZH:        "财务指导",
				Description:   "Banking, budgeting, financial tips",
				DescriptionZH: "银行、预算、财务建议",
				Keywords:      []string{"banking", "budget", "money", "financial"},
			},
		},
	}
}
