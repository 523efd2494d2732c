package repository

import "github.com/tarekzhran/inspection-reports/internal/models"

// DefaultDirectory holds the directorate's known names, used to seed an
// empty database so autocomplete works out of the box.
var DefaultDirectory = map[string][]string{
	models.FieldInspector: {
		"الطارق زهران",
		"أحمد محمد علي السيد",
		"فاطمة حسن محمد أحمد",
		"محمد عبد الرحمن الطيب",
		"نور الدين أحمد عبد الله",
		"سعاد محمود حسين",
		"عبد الله عبد الغني الجبالي",
		"مريم السيد محمد",
		"حسام الدين محمد علي",
		"ليلى عبد العزيز إبراهيم",
		"خالد أحمد محمود",
		"نادية حسين عبد الرحمن",
		"طارق السيد أحمد",
		"منى عبد الحميد محمد",
	},
	models.FieldLocation: {
		"مستشفى سمنود المركزي",
		"مستشفى صدر المحلة الكبرى",
		"مستشفى طنطا العام",
		"مستشفى كفر الزيات المركزي",
		"مستشفى المحلة الكبرى العام",
		"مستشفى بسيون المركزي",
		"مستشفى زفتى العام",
		"مستشفى قطور المركزي",
		"مستشفى السنطة المركزي",
		"مركز صحي طنطا الشامل",
		"مركز صحي المحلة الكبرى",
		"مركز صحي كفر الزيات",
		"مركز صحي سمنود",
		"مركز صحي بسيون",
		"مركز صحي زفتى",
	},
	models.FieldEmployee: {
		"إبراهيم حمزة زايد",
		"جهاد أنور عبد الستار",
		"إيمان مجد رمضان",
		"إسلام مسعد السيد",
		"محمود شلبي الخولي",
		"محمد عبد الوهاب أحمد",
		"أحمد علي حسن محمد",
		"فاطمة محمد سالم",
		"عمر عبد الله الطيب",
		"نادية حسين عبد الرحمن",
		"سامي محمود إبراهيم",
		"ليلى أحمد عبد العزيز",
		"محمد صلاح الدين",
		"هنا عبد العزيز محمد",
		"يوسف إبراهيم أحمد",
		"سارة محمد علي",
		"حسام عبد الحميد",
		"مروة أحمد سالم",
		"عبد الرحمن محمود",
		"زينب حسن محمد",
		"أسامة عبد الله",
		"رانيا السيد أحمد",
	},
	models.FieldPosition: {
		"استشاري صدر",
		"علاج طبيعي",
		"فنية تمريض",
		"أخصائية تمريض",
		"أخصائي شئون",
		"فني تغذية",
		"مهندس صيانة",
		"أخصائي مختبر",
		"فني أشعة",
		"طبيب عام",
		"أخصائي نفسي",
		"فني صيدلة",
		"أخصائي اجتماعي",
		"فني معمل",
		"سكرتير طبي",
	},
}
