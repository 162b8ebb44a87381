package catalog

// thaiLetters is the built-in alphabet: consonants in traditional order, then vowel forms.
var thaiLetters = []Letter{
	{Glyph: "ก", Latin: "g", Pronunciation: "gɔɔ-gài", Example: "ก ไก่", ExampleMeaning: "chicken", Consonant: true},
	{Glyph: "ข", Latin: "k", Pronunciation: "kɔ̌ɔ-kài", Example: "ข ไข่", ExampleMeaning: "egg", Consonant: true},
	{Glyph: "ฃ", Latin: "k", Pronunciation: "kɔ̌ɔ-kùuat", Example: "ฃ ขวด", ExampleMeaning: "bottle (no longer in use)", Consonant: true},
	{Glyph: "ค", Latin: "k", Pronunciation: "kɔɔ-kwaai", Example: "ค ควาย", ExampleMeaning: "buffalo", Consonant: true},
	{Glyph: "ฅ", Latin: "k", Pronunciation: "kɔɔ-kon", Example: "ฅ คน", ExampleMeaning: "person (no longer a direct object)", Consonant: true},
	{Glyph: "ฆ", Latin: "k", Pronunciation: "kɔɔ-rá-kang", Example: "ฆ ระฆัง", ExampleMeaning: "bell", Consonant: true},
	{Glyph: "ง", Latin: "ng", Pronunciation: "ngɔɔ-nguu", Example: "ง งู", ExampleMeaning: "snake", Consonant: true},
	{Glyph: "จ", Latin: "j", Pronunciation: "jɔɔ-jaan", Example: "จ จาน", ExampleMeaning: "plate", Consonant: true},
	{Glyph: "ฉ", Latin: "ch", Pronunciation: "chɔ̌ɔ-chìng", Example: "ฉ ฉิ่ง", ExampleMeaning: "cymbals", Consonant: true},
	{Glyph: "ช", Latin: "ch", Pronunciation: "chɔɔ-cháang", Example: "ช ช้าง", ExampleMeaning: "elephant", Consonant: true},
	{Glyph: "ซ", Latin: "s", Pronunciation: "sɔɔ-sôo", Example: "ซ โซ่", ExampleMeaning: "chain", Consonant: true},
	{Glyph: "ฌ", Latin: "ch", Pronunciation: "chɔɔ-chəə", Example: "ฌ เฌอ", ExampleMeaning: "tree", Consonant: true},
	{Glyph: "ญ", Latin: "y", Pronunciation: "yɔɔ-yǐng", Example: "ญ หญิง", ExampleMeaning: "woman", Consonant: true},
	{Glyph: "ฎ", Latin: "d", Pronunciation: "dɔɔ-chá-daa", Example: "ฎ ชฎา", ExampleMeaning: "headdress", Consonant: true},
	{Glyph: "ฏ", Latin: "dt", Pronunciation: "dtɔɔ-bpà-dtàk", Example: "ฏ ปฏัก", ExampleMeaning: "goad", Consonant: true},
	{Glyph: "ฐ", Latin: "t", Pronunciation: "tɔ̌ɔ-tǎan", Example: "ฐ ฐาน", ExampleMeaning: "pedestal", Consonant: true},
	{Glyph: "ฑ", Latin: "t", Pronunciation: "tɔɔ-mon-too", Example: "ฑ มณโฑ", ExampleMeaning: "Montho", Consonant: true},
	{Glyph: "ฒ", Latin: "t", Pronunciation: "tɔɔ-pûu-tâo", Example: "ฒ ผู้เฒ่า", ExampleMeaning: "elder", Consonant: true},
	{Glyph: "ณ", Latin: "n", Pronunciation: "nɔɔ-neen", Example: "ณ เณร", ExampleMeaning: "novice monk", Consonant: true},
	{Glyph: "ด", Latin: "d", Pronunciation: "dɔɔ-dèk", Example: "ด เด็ก", ExampleMeaning: "child", Consonant: true},
	{Glyph: "ต", Latin: "dt", Pronunciation: "dtɔɔ-dtào", Example: "ต เต่า", ExampleMeaning: "turtle", Consonant: true},
	{Glyph: "ถ", Latin: "t", Pronunciation: "tɔ̌ɔ-tǔng", Example: "ถ ถุง", ExampleMeaning: "sack", Consonant: true},
	{Glyph: "ท", Latin: "t", Pronunciation: "tɔɔ-tá-hǎan", Example: "ท ทหาร", ExampleMeaning: "soldier", Consonant: true},
	{Glyph: "ธ", Latin: "t", Pronunciation: "tɔɔ-tong", Example: "ธ ธง", ExampleMeaning: "flag", Consonant: true},
	{Glyph: "น", Latin: "n", Pronunciation: "nɔɔ-nǔu", Example: "น หนู", ExampleMeaning: "mouse", Consonant: true},
	{Glyph: "บ", Latin: "b", Pronunciation: "bɔɔ-bai-mái", Example: "บ ใบไม้", ExampleMeaning: "leaf", Consonant: true},
	{Glyph: "ป", Latin: "bp", Pronunciation: "bpɔɔ-bplaa", Example: "ป ปลา", ExampleMeaning: "fish", Consonant: true},
	{Glyph: "ผ", Latin: "p", Pronunciation: "pɔ̌ɔ-pʉ̂ng", Example: "ผ ผึ้ง", ExampleMeaning: "bee", Consonant: true},
	{Glyph: "ฝ", Latin: "f", Pronunciation: "fɔ̌ɔ-fǎa", Example: "ฝ ฝา", ExampleMeaning: "lid", Consonant: true},
	{Glyph: "พ", Latin: "p", Pronunciation: "pɔɔ-paan", Example: "พ พาน", ExampleMeaning: "tray", Consonant: true},
	{Glyph: "ฟ", Latin: "f", Pronunciation: "fɔɔ-fan", Example: "ฟ ฟัน", ExampleMeaning: "teeth", Consonant: true},
	{Glyph: "ภ", Latin: "p", Pronunciation: "pɔɔ-sǎm-pao", Example: "ภ สำเภา", ExampleMeaning: "junk boat", Consonant: true},
	{Glyph: "ม", Latin: "m", Pronunciation: "mɔɔ-máa", Example: "ม ม้า", ExampleMeaning: "horse", Consonant: true},
	{Glyph: "ย", Latin: "y", Pronunciation: "yɔɔ-yák", Example: "ย ยักษ์", ExampleMeaning: "giant", Consonant: true},
	{Glyph: "ร", Latin: "r", Pronunciation: "rɔɔ-rʉʉa", Example: "ร เรือ", ExampleMeaning: "boat", Consonant: true},
	{Glyph: "ล", Latin: "l", Pronunciation: "lɔɔ-ling", Example: "ล ลิง", ExampleMeaning: "monkey", Consonant: true},
	{Glyph: "ว", Latin: "w", Pronunciation: "wɔɔ-wɛ̌ɛn", Example: "ว แหวน", ExampleMeaning: "ring", Consonant: true},
	{Glyph: "ศ", Latin: "s", Pronunciation: "sɔ̌ɔ-sǎa-laa", Example: "ศ ศาลา", ExampleMeaning: "pavilion", Consonant: true},
	{Glyph: "ษ", Latin: "s", Pronunciation: "sɔ̌ɔ-rʉʉ-sǐi", Example: "ษ ฤๅษี", ExampleMeaning: "hermit", Consonant: true},
	{Glyph: "ส", Latin: "s", Pronunciation: "sɔ̌ɔ-sʉ̌ʉa", Example: "ส เสือ", ExampleMeaning: "tiger", Consonant: true},
	{Glyph: "ห", Latin: "h", Pronunciation: "hɔ̌ɔ-hìip", Example: "ห หีบ", ExampleMeaning: "chest", Consonant: true},
	{Glyph: "ฬ", Latin: "l", Pronunciation: "lɔɔ-jù-laa", Example: "ฬ จุฬา", ExampleMeaning: "kite", Consonant: true},
	{Glyph: "อ", Latin: "o", Pronunciation: "ɔɔ-àang", Example: "อ อ่าง", ExampleMeaning: "basin", Consonant: true},
	{Glyph: "ฮ", Latin: "h", Pronunciation: "hɔɔ-nók-hûuk", Example: "ฮ นกฮูก", ExampleMeaning: "owl", Consonant: true},
	{Glyph: "อะ", Latin: "a", Pronunciation: "sara a"},
	{Glyph: "อิ", Latin: "i", Pronunciation: "sara i"},
	{Glyph: "อึ", Latin: "ʉ", Pronunciation: "sara ue"},
	{Glyph: "อุ", Latin: "u", Pronunciation: "sara u"},
	{Glyph: "เอะ", Latin: "e", Pronunciation: "sara e"},
	{Glyph: "แอะ", Latin: "ɛ", Pronunciation: "sara ae"},
	{Glyph: "โอะ", Latin: "o", Pronunciation: "sara o"},
	{Glyph: "เอาะ", Latin: "ɔ", Pronunciation: "sara o"},
	{Glyph: "เออะ", Latin: "ə", Pronunciation: "sara oe"},
	{Glyph: "เอียะ", Latin: "ia", Pronunciation: "sara ia"},
	{Glyph: "เอือะ", Latin: "uea", Pronunciation: "sara uea"},
	{Glyph: "อัวะ", Latin: "ua", Pronunciation: "sara ua"},
	{Glyph: "อำ", Latin: "am", Pronunciation: "sara am"},
	{Glyph: "ไอ", Latin: "ai", Pronunciation: "sara ai"},
	{Glyph: "ใอ", Latin: "ai", Pronunciation: "sara ai"},
	{Glyph: "เอา", Latin: "ao", Pronunciation: "sara ao"},
	{Glyph: "อา", Latin: "aa", Pronunciation: "sara a"},
	{Glyph: "อี", Latin: "ii", Pronunciation: "sara i"},
	{Glyph: "อือ", Latin: "ʉʉ", Pronunciation: "sara ue"},
	{Glyph: "อู", Latin: "uu", Pronunciation: "sara u"},
	{Glyph: "เอ", Latin: "ee", Pronunciation: "sara e"},
	{Glyph: "แอ", Latin: "ɛɛ", Pronunciation: "sara ae"},
	{Glyph: "โอ", Latin: "oo", Pronunciation: "sara o"},
	{Glyph: "ออ", Latin: "ɔ", Pronunciation: "sara o"},
	{Glyph: "เออ", Latin: "əə", Pronunciation: "sara oe"},
	{Glyph: "เอีย", Latin: "iaa", Pronunciation: "sara ia"},
	{Glyph: "เอือ", Latin: "uea", Pronunciation: "sara uea"},
	{Glyph: "อัว", Latin: "uaa", Pronunciation: "sara ua"},
}
