// Package coach — TIV-COACH: пошаговые инструкции к позам йоги по уровням.
// poses.go — каталог поз. Его же использует TIV-CHECK для подписи к фото.
package coach

import (
	"strconv"
	"strings"
	"unicode"
)

// Level — уровень сложности инструкции.
type Level string

const (
	LevelBeginner     Level = "pemula"
	LevelIntermediate Level = "menengah"
	LevelAdvanced     Level = "mahir"
)

// Levels — уровни в порядке показа.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Label — название уровня с заглавной буквы.
func (l Level) Label() string {
	switch l {
	case LevelBeginner:
		return "Pemula"
	case LevelIntermediate:
		return "Menengah"
	case LevelAdvanced:
		return "Mahir"
	default:
		return string(l)
	}
}

// Guide — инструкция для одного уровня.
type Guide struct {
	Duration string
	Steps    []string
}

// Pose — поза с описанием и инструкциями по уровням.
type Pose struct {
	Name        string
	Sanskrit    string
	Description string
	Guides      map[Level]Guide
}

// FullName — «Tree Pose (Vrksasana)».
func (p Pose) FullName() string {
	return p.Name + " (" + p.Sanskrit + ")"
}

// Poses — поддерживаемые позы, в порядке показа.
var Poses = []Pose{
	{
		Name:        "Downward-Facing Dog",
		Sanskrit:    "Adho Mukha Svanasana",
		Description: "Pose ini meregangkan seluruh tubuh, membangun kekuatan di lengan dan kaki, serta menenangkan pikiran.",
		Guides: map[Level]Guide{
			LevelBeginner: {Duration: "30-60 detik", Steps: []string{
				"Mulai dengan posisi merangkak. Lutut di bawah pinggul, tangan sedikit di depan bahu.",
				"Hembuskan napas dan angkat lutut dari lantai. Jaga agar lutut sedikit ditekuk.",
				"Panjangkan tulang ekor Anda menjauhi panggul.",
				"Tahan dengan nyaman.",
			}},
			LevelIntermediate: {Duration: "1-2 menit", Steps: []string{
				"Mulai dengan posisi merangkak.",
				"Angkat lutut dan coba luruskan kaki sambil menekan tumit ke lantai.",
				"Jaga agar punggung tetap lurus, membentuk huruf V terbalik.",
				"Libatkan otot inti dan lengan Anda.",
			}},
			LevelAdvanced: {Duration: "2-3 menit", Steps: []string{
				"Dari posisi V terbalik, coba angkat satu kaki lurus ke atas.",
				"Pastikan pinggul tetap sejajar.",
				"Tahan selama beberapa napas, lalu ganti kaki.",
				"Fokus pada pernapasan dalam dan peregangan yang lebih dalam.",
			}},
		},
	},
	{
		Name:        "Warrior II",
		Sanskrit:    "Virabhadrasana II",
		Description: "Meningkatkan stamina, meregangkan pinggul dan bahu, serta membangun konsentrasi.",
		Guides: map[Level]Guide{
			LevelBeginner: {Duration: "20-30 detik per sisi", Steps: []string{
				"Berdiri dengan kaki terbuka lebar. Putar kaki kanan 90 derajat ke luar.",
				"Tekuk lutut kanan hingga di atas pergelangan kaki. Jaga kaki kiri lurus.",
				"Angkat lengan sejajar lantai.",
				"Tahan posisi dengan stabil.",
			}},
			LevelIntermediate: {Duration: "45-60 detik per sisi", Steps: []string{
				"Pastikan lutut kanan tertekuk dalam hingga paha sejajar lantai.",
				"Rentangkan lengan dengan kuat, sejajar dengan bahu.",
				"Tatap ujung jari tangan kanan.",
				"Jaga tubuh tetap tegak dan pinggul terbuka.",
			}},
			LevelAdvanced: {Duration: "1-2 menit per sisi", Steps: []string{
				"Dalam posisi Warrior II, coba turunkan pinggul lebih rendah lagi.",
				"Rasakan peregangan yang dalam di paha bagian dalam.",
				"Pastikan energi mengalir dari ujung jari ke ujung jari.",
				"Pertahankan napas yang stabil dan kuat.",
			}},
		},
	},
	{
		Name:        "Tree Pose",
		Sanskrit:    "Vrksasana",
		Description: "Meningkatkan keseimbangan, memperkuat paha dan betis, serta menenangkan pikiran.",
		Guides: map[Level]Guide{
			LevelBeginner: {Duration: "15-30 detik per sisi", Steps: []string{
				"Berdiri tegak. Pindahkan berat badan ke kaki kiri.",
				"Letakkan telapak kaki kanan di pergelangan kaki atau betis kiri (hindari lutut).",
				"Fokus pada satu titik di depan Anda untuk keseimbangan.",
				"Letakkan tangan di dada atau di samping.",
			}},
			LevelIntermediate: {Duration: "30-60 detik per sisi", Steps: []string{
				"Letakkan telapak kaki kanan di bagian dalam paha kiri.",
				"Satukan kedua telapak tangan di depan dada (posisi Anjali Mudra).",
				"Jaga pinggul tetap sejajar dan buka lutut kanan ke samping.",
				"Rasakan kekuatan dari kaki yang menopang.",
			}},
			LevelAdvanced: {Duration: "1-2 menit per sisi", Steps: []string{
				"Dari posisi Tree Pose, angkat tangan lurus ke atas kepala.",
				"Anda bisa mencoba menutup mata untuk tantangan keseimbangan ekstra.",
				"Jaga napas tetap tenang dan teratur.",
				"Rasakan tubuh Anda tumbuh tinggi seperti pohon.",
			}},
		},
	},
	{
		Name:        "Triangle Pose",
		Sanskrit:    "Trikonasana",
		Description: "Meregangkan kaki, pinggul, dan tulang belakang, serta meningkatkan keseimbangan.",
		Guides: map[Level]Guide{
			LevelBeginner: {Duration: "20-30 detik per sisi", Steps: []string{
				"Berdiri dengan kaki terbuka lebar.",
				"Putar kaki kanan ke luar 90 derajat dan kaki kiri sedikit ke dalam.",
				"Rentangkan lengan sejajar dengan lantai, lalu tekuk ke samping kanan, letakkan tangan di tulang kering atau balok.",
				"Angkat lengan kiri ke atas.",
			}},
			LevelIntermediate: {Duration: "30-45 detik per sisi", Steps: []string{
				"Letakkan tangan kanan di lantai di belakang kaki kanan Anda.",
				"Buka dada lebih lebar, tatap ujung jari tangan kiri di atas.",
				"Jaga kedua kaki tetap kuat dan lurus.",
				"Rasakan peregangan di sisi tubuh Anda.",
			}},
			LevelAdvanced: {Duration: "1 menit per sisi", Steps: []string{
				"Pegang ibu jari kaki kanan Anda dengan jari telunjuk dan tengah tangan kanan.",
				"Tingkatkan putaran pada tulang belakang Anda, buka dada sepenuhnya ke langit-langit.",
				"Jaga agar inti tubuh tetap aktif untuk stabilitas.",
				"Pertahankan napas yang dalam dan teratur.",
			}},
		},
	},
	{
		Name:        "Bridge Pose",
		Sanskrit:    "Setu Bandhasana",
		Description: "Memperkuat punggung, bokong, dan paha belakang, serta meregangkan dada.",
		Guides: map[Level]Guide{
			LevelBeginner: {Duration: "30-60 detik", Steps: []string{
				"Berbaring telentang dengan lutut ditekuk, kaki rata di lantai selebar pinggul.",
				"Letakkan lengan di samping tubuh dengan telapak tangan menghadap ke bawah.",
				"Angkat pinggul dari lantai.",
				"Jaga agar paha tetap sejajar.",
			}},
			LevelIntermediate: {Duration: "1-2 menit", Steps: []string{
				"Kaitkan jari-jari tangan di bawah panggul Anda yang terangkat.",
				"Tekan lengan dan bahu ke lantai untuk mengangkat dada lebih tinggi.",
				"Angkat pinggul lebih tinggi lagi, libatkan bokong.",
				"Bernapas dengan stabil.",
			}},
			LevelAdvanced: {Duration: "2 menit", Steps: []string{
				"Dari posisi Bridge, angkat satu kaki lurus ke langit-langit.",
				"Jaga agar pinggul tetap sejajar dan terangkat.",
				"Tahan selama beberapa napas, lalu ganti kaki.",
				"Libatkan inti tubuh untuk menjaga keseimbangan.",
			}},
		},
	},
	{
		Name:        "Cat-Cow Pose",
		Sanskrit:    "Marjaryasana-Bitilasana",
		Description: "Meningkatkan fleksibilitas tulang belakang dan meredakan ketegangan punggung.",
		Guides: map[Level]Guide{
			LevelBeginner: {Duration: "1-2 menit", Steps: []string{
				"Mulai dengan posisi merangkak.",
				"Tarik napas sambil melengkungkan punggung ke bawah (Cow).",
				"Hembuskan napas sambil membulatkan tulang belakang ke atas (Cat).",
				"Ulangi gerakan ini mengikuti irama napas Anda.",
			}},
			LevelIntermediate: {Duration: "2-3 menit", Steps: []string{
				"Fokus pada koordinasi napas dan gerakan secara presisi.",
				"Saat dalam pose Cow, buka dada Anda ke depan.",
				"Saat dalam pose Cat, dorong lantai menjauh dari Anda.",
				"Rasakan setiap sendi tulang belakang bergerak.",
			}},
			LevelAdvanced: {Duration: "3-5 menit", Steps: []string{
				"Tambahkan gerakan melingkar pada pinggul dan tulang rusuk.",
				"Gerakkan tubuh secara bebas dan intuitif dari pose Cat ke Cow.",
				"Coba tutup mata Anda untuk merasakan gerakan lebih dalam.",
				"Jadikan ini sebagai meditasi bergerak.",
			}},
		},
	},
}

// MatchPose находит позу по номеру из списка (1..6), по названию или
// по санскритскому названию. Регистр, пробелы и дефисы не важны.
func MatchPose(query string) (Pose, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Pose{}, false
	}
	if n, err := strconv.Atoi(query); err == nil {
		if n >= 1 && n <= len(Poses) {
			return Poses[n-1], true
		}
		return Pose{}, false
	}

	key := normalize(query)
	for _, p := range Poses {
		name := normalize(p.Name)
		// "tree" тоже подходит к "Tree Pose"
		if key == name || key+"pose" == name || key == normalize(p.Sanskrit) {
			return p, true
		}
	}
	return Pose{}, false
}

// ParseLevel распознаёт уровень: pemula/menengah/mahir или beginner/intermediate/advanced.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pemula", "beginner":
		return LevelBeginner, true
	case "menengah", "intermediate":
		return LevelIntermediate, true
	case "mahir", "advanced":
		return LevelAdvanced, true
	}
	return "", false
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
