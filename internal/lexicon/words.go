package lexicon

// Canonical word lists for the 对-construction pipeline. Category
// assignments are load-bearing: classification correctness depends on
// these exact memberships, so edits here must be deliberate.

// Predicates grouped by construction category.
var (
	mentalStatePredicates = []string{
		"喜欢", "讨厌", "害怕", "担心", "担忧", "恐惧", "忧虑",
		"满意", "不满", "失望", "绝望", "感激", "感恩", "怨恨", "痛恨",
		"佩服", "敬佩", "钦佩", "崇拜", "景仰", "惊讶", "惊喜", "诧异",
		"气愤", "愤怒", "愤慨", "热爱", "钟爱", "眷恋", "思念",
		"了解", "理解", "认识", "熟悉", "知道", "明白", "懂",
		"怀疑", "相信", "信任", "信赖", "依赖",
		"关心", "关注", "注意", "重视", "在意", "在乎", "留意",
		"尊重", "尊敬", "敬重", "看重", "珍视",
		"感到", "觉得", "感觉",
		"感兴趣", "有兴趣", "没兴趣", "没有兴趣", "不感兴趣",
		"有好感", "有信心", "有把握", "有印象", "没印象",
		"有意见", "有看法", "抱有", "怀有", "持有",
	}

	aboutnessPredicates = []string{
		"发表", "表态", "置评", "发言", "评价", "评论", "评述", "点评",
		"分析", "研究", "探讨", "考察", "调查", "调研",
		"讨论", "辩论", "争论", "商议", "商讨",
		"报道", "报告", "陈述", "描述", "阐述", "论述",
		"提出", "作出", "做出", "给出", "给予",
	}

	scopedInterventionPredicates = []string{
		"进行", "实行", "实施", "执行", "采取", "开展", "展开",
		"检查", "监督", "管理", "整顿", "治理",
		"帮助", "照顾", "保护", "培训", "治疗", "教育",
		"负责", "负", "要求", "施加", "开放",
		"反抗", "抵抗", "对抗", "攻击",
	}

	directedActionPredicates = []string{
		"说", "讲", "喊", "叫", "问", "答", "笑", "骂", "吼", "嚷",
		"说道", "问道", "答道", "喊道", "笑道",
		"点头", "摇头", "挥手", "鞠躬", "微笑",
		"解释", "交代", "表示",
	}

	dispositionPredicates = []string{
		"热情", "冷淡", "冷漠", "友好", "友善", "客气", "礼貌", "恭敬",
		"粗暴", "蛮横", "霸道", "好", "坏", "像", "如同",
		"服从", "顺从", "言听计从", "百依百顺",
	}

	evaluationPredicates = []string{
		"有用", "有益", "有害", "有利", "不利", "有效", "无效",
		"重要", "必要", "关键", "危险", "公平", "不公平",
		"造成", "导致", "带来", "产生", "起",
	}
)

// complements follow a predicate but are never part of one.
var complements = []string{
	"意见", "看法", "观点", "声明", "讲话", "评论", "建议",
	"影响", "作用", "效果", "贡献", "帮助", "支持", "反对",
	"兴趣", "信心", "好感", "印象", "了解", "认识",
	"检查", "调查", "研究", "分析", "治疗", "培训",
}

// commonNouns must never yield a predicate from their leading characters
// (问题 must not produce 问).
var commonNouns = []string{
	"问题", "情况", "现象", "事情", "事件", "结果", "原因",
	"这个", "那个", "这些", "那些", "这件事", "那件事",
	"工作", "学习", "生活", "健康", "经济", "社会", "环境",
	"企业", "公司", "政府", "国家", "世界", "市场",
	"老师", "学生", "朋友", "同事", "领导", "客人",
	"经济发展", "社会发展", "科学技术", "意见", "看法",
}

// degreeAdverbs precede the real predicate and are skipped to find it.
var degreeAdverbs = []string{
	"很", "非常", "十分", "特别", "比较", "挺", "颇", "极其",
	"相当", "格外", "更", "更加", "最", "太", "真", "好", "蛮",
	"越来越", "愈来愈", "越发", "尤其", "极", "甚", "颇为",
}

var negationWords = []string{"不", "没", "没有", "未", "非", "莫", "勿", "别", "无"}

// Animacy markers for guessing whether a Y-phrase refers to a person.
var (
	animateMarkers = []string{
		"他", "她", "我", "你", "您", "咱", "们", "人", "者", "家", "员",
		"师", "生", "民", "众", "客", "友", "敌", "方", "孩子", "老人",
		"同学", "同事", "朋友", "领导", "老师", "学生", "医生", "病人",
	}

	inanimateMarkers = []string{
		"此", "这", "那", "事", "件", "问题", "情况", "现象", "结果",
		"工作", "任务", "项目", "计划", "政策", "法律", "制度",
		"经济", "社会", "环境", "健康", "身体", "生活", "学习",
	}
)
